package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clara-app/clara-server/internal/view"
)

// adminPinnedLimit caps the important-articles list on the dashboard.
const adminPinnedLimit = 10

// DashboardHandler serves the dashboard page controller.
type DashboardHandler struct {
	Profiles ProfileStore
	Articles ArticleStore
	Pins     PinStore
}

func NewDashboardHandler(p ProfileStore, a ArticleStore, pins PinStore) *DashboardHandler {
	return &DashboardHandler{Profiles: p, Articles: a, Pins: pins}
}

// Dashboard assembles the greeting, the admin visibility bit and the
// two article lists. Each list is independently fault tolerant: a
// failure fills in that list's error copy and the rest of the page
// renders normally.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	page := view.DashboardPage{}

	// Greeting fails open: no profile means a generic hello and no
	// admin regions, never a dead page.
	profile, err := h.Profiles.GetByID(ctx, userID)
	if err != nil {
		c.Logger().Errorf("dashboard: profile lookup failed for user=%s: %v", userID, err)
		page.Greeting = view.Greeting("")
	} else {
		page.Greeting = view.Greeting(profile.Name)
		page.ShowAdmin = profile.IsAdmin()
	}

	page.Important = h.importantList(ctx, c)
	page.Pinned = h.pinnedList(ctx, c, userID)

	return c.JSON(http.StatusOK, page)
}

func (h *DashboardHandler) importantList(ctx context.Context, c echo.Context) view.List {
	summaries, err := h.Articles.ListAdminPinned(ctx, adminPinnedLimit)
	if err != nil {
		c.Logger().Errorf("dashboard: important list failed: %v", err)
		return view.FailedList(view.MsgImportantError)
	}
	return view.NewList(summaries, view.MsgImportantEmpty)
}

// pinnedList resolves the viewer's pins in two steps: the pin scan,
// then a batched fetch of the referenced articles. Zero pins skips the
// batch fetch entirely.
func (h *DashboardHandler) pinnedList(ctx context.Context, c echo.Context, userID string) view.List {
	ids, err := h.Pins.ListArticleIDs(ctx, userID)
	if err != nil {
		c.Logger().Errorf("dashboard: pin scan failed for user=%s: %v", userID, err)
		return view.FailedList(view.MsgPinnedError)
	}
	if len(ids) == 0 {
		return view.NewList(nil, view.MsgPinnedEmpty)
	}
	summaries, err := h.Articles.ListByIDs(ctx, ids)
	if err != nil {
		c.Logger().Errorf("dashboard: pinned article fetch failed for user=%s: %v", userID, err)
		return view.FailedList(view.MsgPinnedError)
	}
	return view.NewList(summaries, view.MsgPinnedEmpty)
}
