package web

import (
	"net/http"

	"github.com/esimdash/esimdash-cli/internal/view"
	"github.com/gin-gonic/gin"
)

type loginPage struct {
	Username    string
	Error       string
	ButtonLabel string
}

type dashboardState struct {
	Loading bool
	Error   string
	Empty   bool
	Table   view.Table
}

func (s *Server) renderPage(c *gin.Context) {
	d, _ := c.Get(decisionKey)
	decision, _ := d.(view.Decision)

	switch decision.Render {
	case view.PageDashboard:
		c.HTML(http.StatusOK, "dashboard.html", dashboardState{Loading: true})
	default:
		lv := view.NewLoginView(s.api, s.store(c), s.logger)
		c.HTML(http.StatusOK, "login.html", loginPage{ButtonLabel: lv.ButtonLabel()})
	}
}

func (s *Server) submitLogin(c *gin.Context) {
	lv := view.NewLoginView(s.api, s.store(c), s.logger)
	lv.Form.Update("username", c.PostForm("username"))
	lv.Form.Update("password", c.PostForm("password"))

	nav := lv.Submit(c.Request.Context())
	if !nav.IsZero() {
		c.Redirect(http.StatusFound, nav.To)
		return
	}

	c.HTML(http.StatusOK, "login.html", loginPage{
		Username:    lv.Form.Username,
		Error:       lv.Error,
		ButtonLabel: lv.ButtonLabel(),
	})
}

// esimsFragment runs one dashboard load and renders the resulting state.
func (s *Server) esimsFragment(c *gin.Context) {
	dv := view.NewDashboardView(s.api, s.store(c), s.logger)
	dv.Load(c.Request.Context())

	c.HTML(http.StatusOK, "esims", dashboardState{
		Loading: dv.Phase() == view.PhaseLoading,
		Error:   dv.Error,
		Empty:   dv.Empty(),
		Table:   dv.Table(),
	})
}

func (s *Server) logout(c *gin.Context) {
	nav := view.Logout(s.store(c), s.logger)
	c.Redirect(http.StatusFound, nav.To)
}
