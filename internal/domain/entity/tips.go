package entity

// CategoryTips is the "5 Rs" educational block shown after a classification.
type CategoryTips struct {
	Definition string `json:"definition"`
	Reduce     string `json:"reduce"`
	Reuse      string `json:"reuse"`
	Recycle    string `json:"recycle"`
	Educate    string `json:"educate"`
	Support    string `json:"support"`
}

var categoryTips = map[WasteCategory]CategoryTips{
	CategoryEwaste: {
		Definition: "Electronic waste: discarded devices, cables, batteries and circuit boards containing recoverable metals and hazardous substances.",
		Reduce:     "Repair devices instead of replacing them, and skip upgrades you don't need.",
		Reuse:      "Donate working electronics to schools or community programs.",
		Recycle:    "Drop e-waste at certified collection points; never put it in household bins.",
		Educate:    "Share how improper e-waste disposal leaks lead and mercury into soil.",
		Support:    "Buy from manufacturers with take-back and refurbishment programs.",
	},
	CategoryPlastic: {
		Definition: "Petroleum-based polymer packaging and products that persist for centuries in landfills and oceans.",
		Reduce:     "Choose products with minimal or no plastic packaging.",
		Reuse:      "Refill bottles and repurpose containers before discarding them.",
		Recycle:    "Rinse and sort plastics by resin code before recycling.",
		Educate:    "Explain how microplastics enter the food chain.",
		Support:    "Support refill stores and plastic-free initiatives.",
	},
	CategoryBiowaste: {
		Definition: "Biodegradable kitchen and garden waste suitable for composting or biogas.",
		Reduce:     "Plan meals to cut food waste at the source.",
		Reuse:      "Use vegetable scraps for stock before composting.",
		Recycle:    "Collect biowaste separately for municipal composting.",
		Educate:    "Show how landfilled biowaste produces methane.",
		Support:    "Back community composting and biogas projects.",
	},
	CategoryCardboard: {
		Definition: "Corrugated and flat cardboard from shipping and packaging, highly recyclable when clean and dry.",
		Reduce:     "Consolidate online orders to cut packaging volume.",
		Reuse:      "Keep boxes for storage or moving before recycling.",
		Recycle:    "Flatten boxes and keep them dry; greasy board goes to compost.",
		Educate:    "Note that cardboard fibers survive up to seven recycling cycles.",
		Support:    "Prefer shops using recycled-content packaging.",
	},
	CategoryPaper: {
		Definition: "Printed and writing paper, newsprint and magazines made of recyclable wood fiber.",
		Reduce:     "Go paperless for bills and receipts where you can.",
		Reuse:      "Use single-sided prints as scrap paper.",
		Recycle:    "Recycle clean paper; shredded paper goes in a closed bag.",
		Educate:    "Recycling a tonne of paper saves around 17 trees.",
		Support:    "Buy recycled and FSC-certified paper products.",
	},
	CategoryGlass: {
		Definition: "Bottles and jars that can be remelted endlessly without quality loss.",
		Reduce:     "Buy in bulk to cut container count.",
		Reuse:      "Jars make excellent storage and preserving containers.",
		Recycle:    "Sort by color where required; remove lids and corks.",
		Educate:    "Glass in landfill takes over a million years to break down.",
		Support:    "Choose deposit-return bottles where available.",
	},
	CategoryMetal: {
		Definition: "Aluminium and steel cans, foil and scrap with high recovery value.",
		Reduce:     "Choose refillable containers over single-use cans.",
		Reuse:      "Tins work as planters and organizers.",
		Recycle:    "Rinse cans; even crumpled foil balls are recyclable.",
		Educate:    "Recycling aluminium saves 95% of the energy of smelting new.",
		Support:    "Support scrap collection schemes in your area.",
	},
	CategoryOrganic: {
		Definition: "Food scraps and plant matter that decompose naturally into nutrient-rich soil.",
		Reduce:     "Store produce properly so less of it spoils.",
		Reuse:      "Feed suitable scraps to animals or worm farms.",
		Recycle:    "Compost at home or use green-bin collection.",
		Educate:    "Compost returns nutrients that synthetic fertilizer can't replace.",
		Support:    "Buy compost from local recycling facilities.",
	},
	CategoryOther: {
		Definition: "Mixed or unidentified waste that doesn't fit a dedicated stream.",
		Reduce:     "Avoid composite products that can't be separated.",
		Reuse:      "Check if parts of the item can live on separately.",
		Recycle:    "Ask your local facility before binning unusual items.",
		Educate:    "Sorting correctly keeps whole recycling batches from being rejected.",
		Support:    "Support producers who design for disassembly.",
	},
	CategoryPlasticOther: {
		Definition: "Resin code 7 and mixed plastics: polycarbonate, acrylic and multi-layer laminates.",
		Reduce:     "Avoid multi-layer pouches and mixed-material packaging.",
		Reuse:      "Sturdy code-7 containers can be reused for non-food storage.",
		Recycle:    "Most code-7 plastic is not curbside recyclable; check locally.",
		Educate:    "Mixed resins contaminate otherwise clean recycling streams.",
		Support:    "Favor single-resin packaging that recyclers can process.",
	},
	CategoryPlasticPete: {
		Definition: "PETE/PET (code 1): drink bottles and food trays, the most widely recycled plastic.",
		Reduce:     "Carry a refillable bottle instead of buying PET bottles.",
		Reuse:      "PET bottles are single-use by design; avoid refilling with hot liquids.",
		Recycle:    "Empty, crush and cap bottles before recycling.",
		Educate:    "Recycled PET becomes fleece, carpet and new bottles.",
		Support:    "Buy products in bottles with recycled PET content.",
	},
	CategoryPlasticHdpe: {
		Definition: "HDPE (code 2): milk jugs, detergent bottles and caps, sturdy and widely recyclable.",
		Reduce:     "Buy concentrates to cut bottle count.",
		Reuse:      "HDPE jugs are safe to reuse for watering and storage.",
		Recycle:    "Rinse and recycle; most curbside programs accept HDPE.",
		Educate:    "HDPE recycles into pipes, crates and new bottles.",
		Support:    "Choose brands selling refill pouches for HDPE bottles.",
	},
	CategoryPlasticPp: {
		Definition: "Polypropylene (code 5): yogurt tubs, bottle caps and straws, increasingly accepted curbside.",
		Reduce:     "Skip single-serve tubs in favor of larger containers.",
		Reuse:      "PP tubs are dishwasher-safe and reusable.",
		Recycle:    "Check local acceptance; many programs now take PP.",
		Educate:    "PP recycles into bins, trays and automotive parts.",
		Support:    "Support store drop-off programs for caps and tubs.",
	},
	CategoryPlasticPs: {
		Definition: "Polystyrene (code 6): foam cups, trays and packing material, rarely recyclable.",
		Reduce:     "Refuse foam takeout containers where alternatives exist.",
		Reuse:      "Packing peanuts can be reused for shipping.",
		Recycle:    "Curbside recycling almost never accepts PS; look for special drop-offs.",
		Educate:    "Foam breaks into persistent fragments that wildlife ingest.",
		Support:    "Support local bans and paper-based alternatives.",
	},
	CategoryRecyclable: {
		Definition: "Items accepted by common curbside recycling streams.",
		Reduce:     "Recycling is the fallback; reducing consumption comes first.",
		Reuse:      "Reuse containers until they no longer serve, then recycle.",
		Recycle:    "Keep recyclables clean, dry and loose, never bagged.",
		Educate:    "Wish-cycling contaminates loads; when in doubt, check first.",
		Support:    "Buy products made from post-consumer recycled material.",
	},
	CategoryCompostable: {
		Definition: "Certified compostable items that break down in composting conditions.",
		Reduce:     "Compostable single-use is still single-use; prefer durables.",
		Reuse:      "Not applicable for most certified compostables; compost promptly.",
		Recycle:    "Send to industrial composting; home piles may be too cool.",
		Educate:    "Compostables in landfill behave like ordinary waste.",
		Support:    "Support venues that pair compostable serviceware with collection.",
	},
	CategoryNonRecyclable: {
		Definition: "Residual waste with no current recovery route, destined for landfill or incineration.",
		Reduce:     "The only lever for residual waste is buying less of it.",
		Reuse:      "Check for creative reuse before the bin.",
		Recycle:    "Keep non-recyclables out of recycling streams.",
		Educate:    "Every kilogram avoided matters more than any disposal choice.",
		Support:    "Support producers redesigning products away from residual waste.",
	},
}

// TipsFor returns the tip block for a category, falling back to the "other"
// block for unknown categories.
func TipsFor(category WasteCategory) CategoryTips {
	if tips, ok := categoryTips[category]; ok {
		return tips
	}
	return categoryTips[CategoryOther]
}
