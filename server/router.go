package server

import (
	"net/http"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/server/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

type RouterConfig struct {
	ServiceName string
	// ByPassAuth serves write routes without a signed in user.
	ByPassAuth bool
	// Provider decides whether a user is signed in.
	Provider remote.IdentityProvider
}

// NewRouter builds the local API. Reads are open, writes require a signed in
// user unless ByPassAuth is set.
func NewRouter(repos Repositories, config RouterConfig) *gin.Engine {
	h := &Handlers{repos: repos}
	metrics := middlewares.NewMetrics()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.Default())
	router.Use(gintrace.Middleware(config.ServiceName))
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/watch/:stream", h.watch)

	write := router.Group("/")
	if !config.ByPassAuth {
		write.Use(middlewares.SignedIn(config.Provider))
	}

	auth := router.Group("/auth")
	auth.POST("/signup", h.signUp)
	auth.POST("/signin", h.signIn)
	auth.POST("/signout", h.signOut)
	auth.POST("/reset", h.resetPassword)
	auth.GET("/me", h.currentUser)
	write.PUT("/auth/me", h.updateProfile)

	router.GET("/music", h.listMusic)
	router.GET("/music/:id", h.getMusic)
	router.GET("/music-meta/categories", h.musicCategoryNames)
	router.GET("/music-meta/years", h.musicYears)
	router.GET("/music-meta/months", h.musicMonths)
	write.POST("/music", h.insertMusic)
	write.PUT("/music/:id", h.updateMusic)
	write.DELETE("/music/:id", h.deleteMusic)
	write.PUT("/music/:id/active", h.setMusicActive)
	write.POST("/uploads/music/audio", h.uploadMusicAudio)
	write.POST("/uploads/music/thumbnails", h.uploadMusicThumbnail)

	router.GET("/music-categories", h.listMusicCategories)
	write.POST("/music-categories", h.insertMusicCategory)
	write.PUT("/music-categories/:id", h.updateMusicCategory)
	write.DELETE("/music-categories/:id", h.deleteMusicCategory)

	router.GET("/news", h.listNews)
	router.GET("/news-all", h.listAllNews)
	router.GET("/news-drafts", h.listDraftNews)
	router.GET("/news/:id", h.getNews)
	router.GET("/news/:id/files", h.listNewsFiles)
	router.GET("/news/:id/links", h.listNewsLinks)
	write.POST("/news", h.createNews)
	write.PUT("/news/:id", h.updateNews)
	write.DELETE("/news/:id", h.deleteNews)
	write.POST("/news/:id/publish", h.publishNews)
	write.POST("/news/:id/unpublish", h.unpublishNews)
	write.POST("/news/:id/files", h.addNewsFile)
	write.PUT("/news-files/:id", h.updateNewsFile)
	write.DELETE("/news-files/:id", h.deleteNewsFile)
	write.POST("/news/:id/links", h.addNewsLink)
	write.PUT("/news-links/:id", h.updateNewsLink)
	write.DELETE("/news-links/:id", h.deleteNewsLink)
	write.POST("/uploads/news/images", h.uploadNewsImage)
	write.POST("/uploads/news/files", h.uploadNewsFile)

	router.GET("/posts", h.listPosts)
	router.GET("/posts/:id", h.getPost)
	router.GET("/posts/:id/comments", h.listComments)
	router.GET("/comments/:id/replies", h.listReplies)
	write.POST("/posts", h.createPost)
	write.PUT("/posts/:id", h.updatePost)
	write.DELETE("/posts/:id", h.deletePost)
	write.POST("/posts/:id/like", h.likePost)
	write.POST("/posts/:id/comments", h.addComment)
	write.PUT("/comments/:id", h.updateComment)
	write.DELETE("/comments/:id", h.deleteComment)
	write.POST("/comments/:id/like", h.likeComment)
	write.POST("/comments/:id/replies", h.addReply)
	write.PUT("/replies/:id", h.updateReply)
	write.DELETE("/replies/:id", h.deleteReply)
	write.POST("/replies/:id/like", h.likeReply)
	write.POST("/uploads/social/images", h.uploadSocialImage)

	router.GET("/themes", h.listThemes)
	router.GET("/themes-active", h.activeTheme)
	router.GET("/themes/:id", h.getTheme)
	write.PUT("/themes/:id", h.saveTheme)
	write.DELETE("/themes/:id", h.deleteTheme)
	write.POST("/themes/:id/activate", h.activateTheme)

	router.GET("/elements", h.listElements)
	router.GET("/elements/:id", h.getElement)
	write.PUT("/elements/:id", h.saveElement)
	write.DELETE("/elements/:id", h.deleteElement)
	write.PUT("/elements/:id/visibility", h.setElementVisibility)

	router.GET("/users", h.listUsers)
	router.GET("/users-by-email", h.getUserByEmail)
	router.GET("/users/:id", h.getUser)
	write.PUT("/users/:id", h.saveUser)
	write.DELETE("/users/:id", h.deleteUser)
	write.PUT("/users/:id/active", h.setUserActive)
	write.POST("/users/:id/login", h.recordLogin)

	return router
}
