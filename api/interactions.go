package api

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	headerSignature = "X-Signature-Ed25519"
	headerTimestamp = "X-Signature-Timestamp"

	// interactionPing is Discord's endpoint verification handshake
	interactionPing = 1
)

// InteractionHandler authenticates Discord interaction callbacks and
// answers the ping handshake. Command dispatch is not implemented; every
// authenticated interaction is answered with a pong.
type InteractionHandler struct {
	publicKey ed25519.PublicKey
}

// NewInteractionHandler creates the handler from the hex-encoded Discord
// application public key. An empty key is allowed and causes every
// submission to be rejected as unauthorized.
func NewInteractionHandler(publicKeyHex string) (*InteractionHandler, error) {
	if publicKeyHex == "" {
		return &InteractionHandler{}, nil
	}

	raw, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}

	return &InteractionHandler{publicKey: ed25519.PublicKey(raw)}, nil
}

func (h *InteractionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Health check, no verification
	if r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	if r.Header.Get(headerSignature) == "" || r.Header.Get(headerTimestamp) == "" || len(h.publicKey) == 0 {
		writeError(w, http.StatusUnauthorized, "Missing request signature or public key")
		return
	}

	// Verifies timestamp+body against the key and restores r.Body
	if !discordgo.VerifyInteraction(r, h.publicKey) {
		writeError(w, http.StatusUnauthorized, "Invalid request signature")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeInternalError(w, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	var interaction struct {
		Type int `json:"type"`
	}
	if err := json.Unmarshal(body, &interaction); err != nil {
		writeInternalError(w, fmt.Errorf("failed to parse interaction: %w", err))
		return
	}

	if interaction.Type != interactionPing {
		log.WithField("type", interaction.Type).Debug("Unhandled interaction type, answering with pong")
	}

	// Pong for the ping handshake; also the placeholder answer for every
	// other interaction type
	writeJSON(w, http.StatusOK, map[string]int{"type": interactionPing})
}
