package server

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/Luismorlan/choirmux/model"
	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/repository"
	"github.com/Luismorlan/choirmux/server/middlewares"
	"github.com/Luismorlan/choirmux/utils"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Repositories are the data sources the API serves.
type Repositories struct {
	Music  *repository.MusicRepository
	News   *repository.NewsRepository
	Social *repository.SocialRepository
	Themes *repository.ThemeRepository
	Users  *repository.UserRepository
	Auth   *repository.AuthRepository
}

// Handlers binds the repositories to gin handlers.
type Handlers struct {
	repos Repositories
}

var errNotFound = errors.New("not found")

// respondError writes an error body in the {"code","msg"} shape and aborts.
func respondError(c *gin.Context, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		Logger.Log.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	c.AbortWithStatusJSON(status, gin.H{
		"code": code,
		"msg":  err.Error(),
	})
}

func classify(err error) (status int, code int) {
	var mirrorErr *repository.MirrorError
	switch {
	case errors.Is(err, errNotFound), errors.Is(err, repository.ErrUserDataNotFound), errors.Is(err, remote.ErrAccountNotFound):
		return http.StatusNotFound, utils.ErrorNotFound
	case errors.Is(err, remote.ErrInvalidCredentials), errors.Is(err, remote.ErrNotSignedIn), errors.Is(err, repository.ErrAuthenticationFailed):
		return http.StatusUnauthorized, utils.ErrorTokenAuthFail
	case errors.Is(err, remote.ErrEmailTaken):
		return http.StatusConflict, utils.ErrorConflict
	case errors.Is(err, remote.ErrWeakPassword), errors.Is(err, model.ErrUnknownEnum):
		return http.StatusBadRequest, utils.ErrorBadRequest
	case errors.As(err, &mirrorErr):
		return http.StatusBadGateway, utils.ErrorMirrorFailure
	default:
		return http.StatusInternalServerError, utils.ErrorRemoteFailure
	}
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"code": utils.ErrorBadRequest,
		"msg":  err.Error(),
	})
}

// snapshot answers a list request with the first value of a stream. The
// stream is closed before returning.
func snapshot[T any](c *gin.Context, open func(ctx context.Context) (<-chan T, error)) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	values, err := open(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	select {
	case v, ok := <-values:
		if !ok {
			respondError(c, errors.New("stream closed"))
			return
		}
		c.JSON(http.StatusOK, v)
	case <-ctx.Done():
		respondError(c, ctx.Err())
	}
}

// lookup answers a point read, 404 when the row isn't cached.
func lookup[T any](c *gin.Context, v T, found bool, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, errors.Wrap(errNotFound, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, v)
}

// done answers a write with 204 or the error.
func done(c *gin.Context, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bind decodes the JSON body into v, answering 400 on failure.
func bind(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}

func intQuery(c *gin.Context, key string) (int, bool) {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		badRequest(c, errors.Wrapf(err, "query %s", key))
		return 0, false
	}
	return n, true
}

type activeBody struct {
	IsActive bool `json:"isActive"`
}

type likeBody struct {
	UserId string `json:"userId"`
}

// liker returns the user toggling a like: the signed in account if any,
// the body's userId otherwise.
func liker(c *gin.Context) (string, bool) {
	var body likeBody
	if c.Request.ContentLength > 0 && !bind(c, &body) {
		return "", false
	}
	if sub := c.GetHeader(middlewares.SubHeader); sub != "" {
		return sub, true
	}
	if body.UserId == "" {
		badRequest(c, errors.New("userId is required"))
		return "", false
	}
	return body.UserId, true
}

type uploadFunc func(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error)

// upload stores the multipart "file" field through fn and answers its URL.
func upload(c *gin.Context, fn uploadFunc) {
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, errors.Wrap(err, "form file"))
		return
	}
	f, err := header.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer f.Close()

	url, err := fn(c.Request.Context(), header.Filename, f, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
