package session

import (
	"crypto/subtle"
	"errors"

	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/config"
)

// ErrInvalidCredentials is returned when the username or password does not match.
var ErrInvalidCredentials = errors.New("invalid username or password")

// flagValue is stored in the client flag while logged in.
const flagValue = "true"

// Gate is the single-user login check. It holds no server-side session: the
// logged-in state is a flag kept by the client and presented on each request.
type Gate struct {
	username string
	password string
	flagName string
	logger   *zap.Logger
}

// NewGate builds a gate from the configured credentials.
func NewGate(cfg config.AuthConfig, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		username: cfg.Username,
		password: cfg.Password,
		flagName: cfg.FlagName,
		logger:   logger,
	}
}

// FlagName is the key under which the client stores the logged-in flag.
func (g *Gate) FlagName() string { return g.flagName }

// Login checks the credentials and returns the flag value to store on success.
func (g *Gate) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		g.logger.Debug("login rejected", zap.String("username", username))
		return "", ErrInvalidCredentials
	}
	g.logger.Info("user logged in", zap.String("username", username))
	return flagValue, nil
}

// Authenticated reports whether a stored flag value marks the client as logged in.
func (g *Gate) Authenticated(stored string) bool {
	return stored == flagValue
}
