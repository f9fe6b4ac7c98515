package handler

import (
	"ecosort/internal/usecase"
)

var (
	classificationHandler *ClassificationHandler
	profileHandler        *ProfileHandler
	categoryHandler       *CategoryHandler
	dashboardHandler      *DashboardHandler
	binHandler            *BinHandler
)

func Setup(
	classificationUseCase *usecase.ClassificationUseCase,
	profileUseCase *usecase.ProfileUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	classificationHandler = NewClassificationHandler(classificationUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	categoryHandler = NewCategoryHandler()
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
	binHandler = NewBinHandler(dashboardUseCase)
}

func GetClassificationHandler() *ClassificationHandler {
	return classificationHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

func GetBinHandler() *BinHandler {
	return binHandler
}
