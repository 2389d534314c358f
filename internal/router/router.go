package router

import (
	"Ming_Social/internal/handler"
	"Ming_Social/internal/middleware"
	"Ming_Social/internal/repository/mysql"
	"Ming_Social/internal/repository/redis"
	"Ming_Social/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(uploadDir string) *gin.Engine {
	r := gin.Default()

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	profileRepo := &mysql.ProfileRepository{DB: mysql.DB}
	postRepo := &mysql.PostRepository{DB: mysql.DB}
	commentRepo := &mysql.CommentRepository{DB: mysql.DB}
	likeRepo := &mysql.LikeRepository{DB: mysql.DB}
	followRepo := &mysql.FollowRepository{DB: mysql.DB}
	tokenRepo := &redis.TokenRepository{}

	user := handler.NewUserHandler(service.NewUserService(userRepo, tokenRepo))
	profile := handler.NewProfileHandler(service.NewProfileService(profileRepo), uploadDir)
	post := handler.NewPostHandler(service.NewPostService(postRepo))
	comment := handler.NewCommentHandler(service.NewCommentService(commentRepo, postRepo))
	like := handler.NewLikeHandler(service.NewLikeService(likeRepo, postRepo))
	follow := handler.NewFollowHandler(service.NewFollowService(followRepo, userRepo))

	auth := middleware.AuthMiddleware(tokenRepo)

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/logout", auth, user.Logout)
		userGroup.GET("/profile", auth, profile.Get)
		userGroup.PUT("/profile", auth, profile.Update)
		userGroup.POST("/profile/picture", auth, profile.UploadPicture)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 帖子相关接口
	postGroup := r.Group("/api/post")
	postGroup.Use(auth)
	{
		postGroup.POST("", post.Create)
		postGroup.GET("", post.List)
	}

	// 评论相关接口
	commentGroup := r.Group("/api/comment")
	commentGroup.Use(auth)
	{
		commentGroup.POST("", comment.Create)
		commentGroup.GET("", comment.List)
	}

	// 点赞相关接口
	likeGroup := r.Group("/api/like")
	likeGroup.Use(auth)
	{
		likeGroup.POST("", like.Create)
		likeGroup.GET("", like.List)
	}

	// 用户关注相关接口
	followGroup := r.Group("/api/follow")
	followGroup.Use(auth)
	{
		followGroup.POST("", follow.Create)
		followGroup.GET("", follow.List)
		followGroup.DELETE("/:id", follow.Delete)
	}

	return r
}
