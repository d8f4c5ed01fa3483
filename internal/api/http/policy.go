package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
)

// PolicyHandler serves the repository's commit-message policy as JSON.
type PolicyHandler struct {
	cfg       commitlint.Config
	effective map[string]commitlint.RuleSetting
}

// NewPolicyHandler validates and resolves cfg once up front.
func NewPolicyHandler(cfg commitlint.Config) (*PolicyHandler, error) {
	if err := commitlint.Validate(cfg); err != nil {
		return nil, err
	}
	effective, err := commitlint.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return &PolicyHandler{cfg: cfg.Clone(), effective: effective}, nil
}

type policyResponse struct {
	OK        bool                              `json:"ok"`
	Policy    commitlint.Config                 `json:"policy"`
	Effective map[string]commitlint.RuleSetting `json:"effective"`
}

func (h *PolicyHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, policyResponse{OK: true, Policy: h.cfg, Effective: h.effective})
}

func (h *PolicyHandler) getRule(c *gin.Context) {
	name := c.Param("rule")
	r, ok := h.effective[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "rule not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"rule":     name,
		"setting":  r,
		"severity": r.Level.String(),
	})
}

func (h *PolicyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/commit-policy", h.get)
	rg.GET("/commit-policy/rules/:rule", h.getRule)
}
