package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/config"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/api/handler"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/api/middleware"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

// Setup builds the Gin engine with every route and middleware attached.
func Setup(cfg *config.Config, h *handler.Handler, sess *session.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(sess))
	{
		admin.GET("/register", h.Auth.Flashes)

		admin.GET("/register/student", h.Student.RegisterForm)
		admin.POST("/register/student", h.Student.Register)
		admin.GET("/register/lecturer", h.Lecturer.RegisterForm)
		admin.POST("/register/lecturer", h.Lecturer.Register)
		admin.GET("/register/course", h.Course.RegisterForm)
		admin.POST("/register/course", h.Course.Register)

		admin.POST("/students/:nim", h.Student.Edit)
		admin.POST("/lecturers/:nip", h.Lecturer.Edit)

		admin.GET("/classes", h.Class.List)
		admin.GET("/classes/:class_id/courses", h.Course.ListByClass)
		admin.GET("/classes/:class_id/timetable.ics", h.Export.ClassTimetable)

		admin.GET("/attendance/:role", h.Attendance.List)
		admin.GET("/attendance/:role/detail", h.Attendance.Detail)
		admin.GET("/attendance/:role/export", h.Export.Attendance)
	}

	return r
}
