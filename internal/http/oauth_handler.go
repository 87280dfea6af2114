package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"

	"github.com/inboxwarm/inboxwarm/config"
	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/crypto"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// OAuthHandler is the operator surface for Gmail OAuth grants: kicking
// off the consent flow, storing the exchanged tokens encrypted, and
// forcing a refresh when support needs one.
type OAuthHandler struct {
	repo      domain.CredentialRepository
	creds     domain.CredentialResolver
	secretKey []byte
	conf      *oauth2.Config
	version   string
	logger    logger.Logger

	exchange func(ctx context.Context, code string) (*oauth2.Token, error)
	refresh  func(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

func NewOAuthHandler(repo domain.CredentialRepository, creds domain.CredentialResolver, secretKey []byte, cfg config.OAuthConfig, version string, logger logger.Logger) *OAuthHandler {
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailModifyScope, gmail.GmailReadonlyScope},
	}
	return &OAuthHandler{
		repo:      repo,
		creds:     creds,
		secretKey: secretKey,
		conf:      conf,
		version:   version,
		logger:    logger,
		exchange: func(ctx context.Context, code string) (*oauth2.Token, error) {
			return conf.Exchange(ctx, code)
		},
		refresh: func(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
			return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
		},
	}
}

// Authorize redirects to the Google consent screen. The mailbox address
// rides in the state parameter so the callback knows whose grant it is.
func (h *OAuthHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, "email query parameter is required", http.StatusBadRequest)
		return
	}

	url := h.conf.AuthCodeURL(email, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// ExchangeToken swaps a consent code for tokens and stores them
// encrypted on the mailbox's credential row
func (h *OAuthHandler) ExchangeToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid token request body", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Code == "" {
		WriteJSONError(w, "email and code are required", http.StatusBadRequest)
		return
	}

	token, err := h.exchange(r.Context(), input.Code)
	if err != nil {
		h.logger.WithField("email", input.Email).Error(fmt.Sprintf("OAuth code exchange failed: %v", err))
		WriteJSONError(w, "code exchange failed", http.StatusBadGateway)
		return
	}
	if token.RefreshToken == "" {
		WriteJSONError(w, "consent did not include a refresh token", http.StatusBadRequest)
		return
	}

	accessCipher, err := crypto.EncryptString(token.AccessToken, h.secretKey)
	if err != nil {
		WriteJSONError(w, "failed to encrypt tokens", http.StatusInternalServerError)
		return
	}
	refreshCipher, err := crypto.EncryptString(token.RefreshToken, h.secretKey)
	if err != nil {
		WriteJSONError(w, "failed to encrypt tokens", http.StatusInternalServerError)
		return
	}

	if err := h.repo.UpdateOAuthTokens(r.Context(), input.Email, accessCipher, refreshCipher); err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			WriteJSONError(w, "no credential row for this mailbox", http.StatusNotFound)
			return
		}
		h.logger.WithField("email", input.Email).Error(fmt.Sprintf("Failed to store oauth tokens: %v", err))
		WriteJSONError(w, "failed to store tokens", http.StatusInternalServerError)
		return
	}

	h.logger.WithField("email", input.Email).Info("Stored OAuth grant")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Refresh forces an access token refresh for a mailbox
func (h *OAuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid refresh request body", http.StatusBadRequest)
		return
	}
	if input.Email == "" {
		WriteJSONError(w, "email is required", http.StatusBadRequest)
		return
	}

	cred, err := h.creds.Resolve(r.Context(), input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			WriteJSONError(w, "no credential row for this mailbox", http.StatusNotFound)
			return
		}
		WriteJSONError(w, "failed to load credential", http.StatusInternalServerError)
		return
	}
	if cred.RefreshToken == "" {
		WriteJSONError(w, "no refresh token on file", http.StatusBadRequest)
		return
	}

	token, err := h.refresh(r.Context(), cred.RefreshToken)
	if err != nil {
		h.logger.WithField("email", input.Email).Error(fmt.Sprintf("Token refresh failed: %v", err))
		WriteJSONError(w, "token refresh failed", http.StatusBadGateway)
		return
	}

	if err := h.creds.PersistRefreshedAccess(r.Context(), input.Email, token.AccessToken); err != nil {
		WriteJSONError(w, "failed to store refreshed token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health reports liveness for the worker process
func (h *OAuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

func (h *OAuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/oauth/authorize", h.Authorize)
	mux.HandleFunc("/oauth/token", h.ExchangeToken)
	mux.HandleFunc("/oauth/refresh", h.Refresh)
	mux.HandleFunc("/health", h.Health)
}
