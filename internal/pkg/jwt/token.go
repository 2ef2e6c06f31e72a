package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// GenerateToken generates a session JWT for a staff or booker account
func GenerateToken(userID uuid.UUID, email string, role models.UserRole, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"role":    string(role),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// GenerateDriverToken generates a session JWT carrying the driver uid
func GenerateDriverToken(userID uuid.UUID, email string, driverUID uuid.UUID, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"role":       string(models.RoleDriver),
		"driver_uid": driverUID.String(),
		"exp":        expiresAt,
		"iss":        cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// GenerateTrackingToken generates a passenger tracking link JWT scoped to
// a single ride. It carries no account id, only the passenger email and
// the ride it grants access to.
func GenerateTrackingToken(rideID uuid.UUID, passengerEmail string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.TrackingExpiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"email":   passengerEmail,
		"role":    string(models.RolePassenger),
		"ride_id": rideID.String(),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}

// IdentityFromClaims maps validated claims to a caller identity
func IdentityFromClaims(claims jwt.MapClaims) (models.CallerIdentity, error) {
	identity := models.CallerIdentity{}

	if v, ok := claims["user_id"].(string); ok {
		identity.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["driver_uid"].(string); ok {
		identity.DriverUID = v
	}
	if v, ok := claims["ride_id"].(string); ok {
		identity.RideID = v
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return identity, fmt.Errorf("token missing role claim")
	}
	identity.Role = models.UserRole(role)

	return identity, nil
}
