package handler

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"ecosort/internal/infrastructure/firebase"
	"ecosort/pkg/errors"
	"ecosort/pkg/response"
)

// DevTokenHandler is only routed in the development environment. It mints
// custom tokens for a uid and decodes token claims for debugging.
type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

type devTokenRequest struct {
	UID string `json:"uid" validate:"required"`
}

func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.firebaseAuth.GenerateToken(c.Request().Context(), req.UID)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to generate token", err))
	}

	return response.Success(c, map[string]interface{}{
		"uid":   req.UID,
		"token": token,
	})
}

type devClaimsRequest struct {
	Token string `json:"token" validate:"required"`
}

// DecodeClaims parses a token WITHOUT verifying its signature. Debug aid
// only; verification always goes through the Firebase Admin SDK.
func (h *DevTokenHandler) DecodeClaims(c echo.Context) error {
	var req devClaimsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(req.Token, claims); err != nil {
		return response.Error(c, errors.BadRequest("Token could not be parsed", err))
	}

	return response.Success(c, map[string]interface{}{
		"claims":   claims,
		"verified": false,
	})
}
