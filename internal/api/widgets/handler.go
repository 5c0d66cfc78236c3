package widgets

import (
	"net/http"

	"lafaek-backend/internal/privacy"
	"lafaek-backend/internal/terminal"

	"github.com/gin-gonic/gin"
)

type PrivacyScoreRequest struct {
	Settings map[string]bool `json:"settings" binding:"required"`
}

// ------------------------------
// POST /widgets/privacy-score
// ------------------------------
func PrivacyScore(c *gin.Context) {
	var req PrivacyScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "settings required"})
		return
	}

	toggles := make(map[privacy.Setting]bool, len(req.Settings))
	for name, on := range req.Settings {
		toggles[privacy.Setting(name)] = on
	}

	score, band := privacy.Score(toggles)
	c.JSON(http.StatusOK, gin.H{"ok": true, "score": score, "band": band})
}

type TerminalRequest struct {
	Command string            `json:"command"`
	Session *terminal.Session `json:"session"`
}

// ------------------------------
// POST /widgets/terminal
// ------------------------------
// The game is stateless server-side: the client carries the session blob
// back with every command.
func Terminal(c *gin.Context) {
	var req TerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "command required"})
		return
	}

	session := req.Session
	if session == nil {
		session = terminal.NewSession()
	}

	result := session.Exec(req.Command)
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"lines":   result.Lines,
		"clear":   result.Clear,
		"session": session,
		"done":    session.Done(),
	})
}
