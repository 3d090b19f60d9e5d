package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/utils"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API only listens on the device, every origin is local.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// opener opens a repository stream from the request query.
type opener func(ctx context.Context, c *gin.Context) (<-chan interface{}, error)

// relay turns a typed stream into an untyped one for the websocket writer.
func relay[T any](open func(ctx context.Context) (<-chan T, error)) opener {
	return func(ctx context.Context, c *gin.Context) (<-chan interface{}, error) {
		values, err := open(ctx)
		if err != nil {
			return nil, err
		}
		out := make(chan interface{})
		go func() {
			defer close(out)
			for v := range values {
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}()
		return out, nil
	}
}

// streams lists what GET /watch/:stream can subscribe to.
func (h *Handlers) streams() map[string]opener {
	return map[string]opener{
		"music":            relay(h.repos.Music.AllMusic),
		"music_categories": relay(h.repos.Music.AllMusicCategories),
		"music_years":      relay(h.repos.Music.Years),
		"news":             relay(h.repos.News.PublishedNews),
		"news_all":         relay(h.repos.News.AllNews),
		"news_drafts":      relay(h.repos.News.DraftNews),
		"posts":            relay(h.repos.Social.AllPosts),
		"comments": func(ctx context.Context, c *gin.Context) (<-chan interface{}, error) {
			postId := c.Query("post")
			return relay(func(ctx context.Context) (<-chan []model.Comment, error) {
				return h.repos.Social.CommentsByPost(ctx, postId)
			})(ctx, c)
		},
		"replies": func(ctx context.Context, c *gin.Context) (<-chan interface{}, error) {
			commentId := c.Query("comment")
			return relay(func(ctx context.Context) (<-chan []model.Reply, error) {
				return h.repos.Social.RepliesByComment(ctx, commentId)
			})(ctx, c)
		},
		"themes":       relay(h.repos.Themes.Themes),
		"active_theme": relay(h.repos.Themes.ActiveThemeChanges),
		"elements":     relay(h.repos.Themes.VisibleElements),
		"users":        relay(h.repos.Users.Users),
		"current_user": relay(h.repos.Auth.CurrentUserChanges),
	}
}

// watch upgrades to a websocket and writes every snapshot of the requested
// stream as a JSON text message until either side goes away.
func (h *Handlers) watch(c *gin.Context) {
	name := c.Param("stream")
	open, ok := h.streams()[name]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"code": utils.ErrorStreamNotDefined,
			"msg":  "unknown stream " + name,
		})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	values, err := open(ctx, c)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		Logger.Log.WithError(err).Warnf("websocket upgrade failed for stream %s", name)
		return
	}
	defer conn.Close()

	go readPump(conn, cancel)
	if err := writePump(ctx, conn, values); err != nil {
		Logger.Log.WithError(err).Infof("stream %s closed", name)
	}
}

// readPump discards client messages and cancels the stream once the client
// disconnects or stops answering pings.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, values <-chan interface{}) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case v, ok := <-values:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream ended"))
			}
			if err := conn.WriteJSON(v); err != nil {
				return errors.Wrap(err, "write snapshot")
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return errors.Wrap(err, "write ping")
			}
		case <-ctx.Done():
			return nil
		}
	}
}
