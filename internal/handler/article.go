package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clara-app/clara-server/internal/model"
	"github.com/clara-app/clara-server/internal/queue"
	"github.com/clara-app/clara-server/internal/view"
)

// ArticleHandler serves the article detail page, the all-articles
// list and the three mutations a reader can perform: the personal
// pin, the admin-wide important flag and flag submission.
type ArticleHandler struct {
	Articles ArticleStore
	Pins     PinStore
	Flags    FlagStore
	Profiles ProfileStore
	// PublishFlag forwards a flag to the moderation queue, best
	// effort. Nil disables publishing.
	PublishFlag func(ctx context.Context, ev queue.ArticleFlaggedEvent) error
}

func NewArticleHandler(a ArticleStore, p PinStore, f FlagStore, pr ProfileStore,
	publish func(ctx context.Context, ev queue.ArticleFlaggedEvent) error) *ArticleHandler {
	return &ArticleHandler{Articles: a, Pins: p, Flags: f, Profiles: pr, PublishFlag: publish}
}

type importantReq struct {
	Important bool `json:"important"`
}
type flagReq struct {
	Reason string `json:"reason"`
}

// ArticlePage is the detail page controller behind GET /article?id=.
// The session gate has already run; c holds the viewer's user_id.
func (h *ArticleHandler) ArticlePage(c echo.Context) error {
	articleID := strings.TrimSpace(c.QueryParam("id"))
	if articleID == "" {
		// Terminal page error, no backend reads.
		return c.JSON(http.StatusOK, view.ArticlePageError{Error: view.MsgMissingArticleID})
	}
	userID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Admin powers fail closed: any profile problem renders the page
	// without the important control.
	isAdmin := false
	if role, err := h.Profiles.GetRole(ctx, userID); err == nil {
		isAdmin = role == model.RoleAdmin
	} else {
		c.Logger().Errorf("article: profile lookup failed for user=%s: %v", userID, err)
	}

	article, err := h.Articles.GetByID(ctx, articleID)
	if err != nil {
		c.Logger().Errorf("article: load failed for id=%s: %v", articleID, err)
		return c.JSON(http.StatusOK, view.ArticlePageError{Error: view.MsgArticleLoad})
	}

	// Pin state defaults to unpinned when the check fails; the page
	// still renders.
	pinned, err := h.Pins.Exists(ctx, userID, articleID)
	if err != nil {
		c.Logger().Errorf("article: pin check failed for user=%s article=%s: %v", userID, articleID, err)
		pinned = false
	}

	return c.JSON(http.StatusOK, view.NewArticlePage(article, pinned, isAdmin))
}

// ToggleImportant sets the admin-wide important flag. The stored value
// read back from the database drives the response, not the requested
// one, so a lost race against another admin reports the true state.
func (h *ArticleHandler) ToggleImportant(c echo.Context) error {
	articleID := c.Param("id")
	userID, _ := c.Get("user_id").(string)

	var req importantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// The role is re-read per request rather than trusted from the
	// token, failing closed on any lookup error.
	role, err := h.Profiles.GetRole(ctx, userID)
	if err != nil || role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	stored, err := h.Articles.SetImportant(ctx, articleID, req.Important)
	if err != nil {
		c.Logger().Errorf("article: important update failed for id=%s: %v", articleID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": view.MsgImportantUpdate})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"is_important": stored,
		"label":        view.ImportantLabel(stored),
	})
}

// Pin creates the viewer's pin row for an article.
func (h *ArticleHandler) Pin(c echo.Context) error {
	articleID := c.Param("id")
	userID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Pins.Create(ctx, userID, articleID); err != nil {
		c.Logger().Errorf("article: pin failed for user=%s article=%s: %v", userID, articleID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": view.MsgPinFailed})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"is_pinned": true,
		"label":     view.PinLabel(true),
	})
}

// Unpin deletes the viewer's pin row. Unpinning an article that was
// never pinned is a storage-level no-op and still succeeds.
func (h *ArticleHandler) Unpin(c echo.Context) error {
	articleID := c.Param("id")
	userID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Pins.Delete(ctx, userID, articleID); err != nil {
		c.Logger().Errorf("article: unpin failed for user=%s article=%s: %v", userID, articleID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": view.MsgUnpinFailed})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"is_pinned": false,
		"label":     view.PinLabel(false),
	})
}

// SubmitFlag records a reader's report. A blank reason is rejected
// locally with no insert. On success the flag is also published to the
// moderation queue; a publish failure is logged and ignored since the
// row is already durable.
func (h *ArticleHandler) SubmitFlag(c echo.Context) error {
	articleID := c.Param("id")
	userID, _ := c.Get("user_id").(string)

	var req flagReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": view.MsgFlagReason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	flag, err := h.Flags.Create(ctx, articleID, userID, reason)
	if err != nil {
		c.Logger().Errorf("article: flag insert failed for article=%s: %v", articleID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": view.MsgFlagFailed})
	}

	if h.PublishFlag != nil {
		ev := queue.ArticleFlaggedEvent{
			FlagID:    flag.ID,
			ArticleID: flag.ArticleID,
			UserID:    flag.UserID,
			Reason:    flag.Reason,
			FlaggedAt: flag.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := h.PublishFlag(ctx, ev); err != nil {
			c.Logger().Warnf("article: flag publish failed for flag=%d: %v", flag.ID, err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": view.MsgFlagThanks})
}

// ListArticles backs both GET /v1/articles and the /articles page:
// every article, newest first. A failed fetch and an empty result give
// different copy and must stay distinguishable.
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	summaries, err := h.Articles.ListAll(ctx)
	if err != nil {
		c.Logger().Errorf("articles: list failed: %v", err)
		return c.JSON(http.StatusOK, view.FailedList(view.MsgArticlesError))
	}
	return c.JSON(http.StatusOK, view.NewList(summaries, view.MsgArticlesEmpty))
}
