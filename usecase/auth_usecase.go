package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"trending-board/domain/model"
	"trending-board/infrastructure/configuration"
	"trending-board/infrastructure/logger"
	"trending-board/infrastructure/utils"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const sessionLifetime = 12 * time.Hour

// IAuthUsecase gates the dashboard behind the configured credential pair.
// Auth is opt-in: without both AUTH_USERNAME and AUTH_PASSWORD_HASH the gate
// stays open and no login form is ever shown.
type IAuthUsecase interface {
	Enabled() bool
	RequireLogin(sess *model.Session) bool
	Login(req model.ReqLogin) bool
	IssueSessionToken(user string) (string, error)
	ParseSessionToken(token string) (*model.Session, error)
}

type AuthUsecase struct {
	config    *configuration.Resolver
	secretKey string
}

func NewAuthUsecase(config *configuration.Resolver) IAuthUsecase {
	secret := config.GetConfig(configuration.KeySecretKey, "")
	if secret == "" {
		// Ephemeral key: sessions do not survive a restart, which is fine for
		// a single-process dashboard.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed generating session secret")
		}
		secret = hex.EncodeToString(buf)
		logger.GetLogger().Warn("SECRET_KEY not set; using an ephemeral session signing key")
	}
	return &AuthUsecase{config: config, secretKey: secret}
}

func (u *AuthUsecase) credentials() model.Credentials {
	return model.Credentials{
		Username:     u.config.GetConfig(configuration.KeyAuthUsername, ""),
		PasswordHash: u.config.GetConfig(configuration.KeyAuthHash, ""),
	}
}

func (u *AuthUsecase) Enabled() bool {
	creds := u.credentials()
	return creds.Username != "" && creds.PasswordHash != ""
}

// RequireLogin reports whether the caller may render gated content. False
// means the login form must be shown and the render cycle stops there.
func (u *AuthUsecase) RequireLogin(sess *model.Session) bool {
	if !u.Enabled() {
		return true
	}
	return sess != nil && sess.Authenticated
}

// Login verifies the submitted pair against the configured credentials. The
// bcrypt comparison runs regardless of whether the username matched, so a
// failure does not reveal which field was wrong. A malformed stored hash is
// treated as a plain mismatch.
func (u *AuthUsecase) Login(req model.ReqLogin) bool {
	creds := u.credentials()
	if creds.Username == "" || creds.PasswordHash == "" {
		return false
	}
	passwordOK := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) == nil
	return passwordOK && req.Username == creds.Username
}

// IssueSessionToken signs a session claim for the authenticated user.
func (u *AuthUsecase) IssueSessionToken(user string) (string, error) {
	now := utils.GetCurrentTime()
	return utils.GenerateToken(map[string]interface{}{
		"username": user,
		"iat":      now.Unix(),
		"exp":      now.Add(sessionLifetime).Unix(),
	}, u.secretKey)
}

// ParseSessionToken reconstructs the session from the cookie token. Any
// invalid, expired or foreign token yields an unauthenticated session.
func (u *AuthUsecase) ParseSessionToken(tokenString string) (*model.Session, error) {
	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserName == "" {
		return nil, fmt.Errorf("invalid session token")
	}
	return &model.Session{Authenticated: true, User: claims.UserName}, nil
}
