// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/hrms/internal/handler"
	"github.com/deppfellow/hrms/internal/middleware"
	"github.com/deppfellow/hrms/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain,
// the error handler and every route.
//
// Order matters: the request id must exist before the New Relic
// transaction and the request logger are built, and Recover sits inside
// the logger so a panic is still logged as a 500.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middleware.StrictRouteMatch(),
	)

	registerSystemRoutes(router, h)
	registerEmployeeRoutes(router, h.Employees)
	registerAttendanceRoutes(router, h.Attendance)

	return router
}

func registerEmployeeRoutes(r *echo.Echo, h *handler.EmployeeHandler) {
	r.GET("/", handler.Handle(h.Handler, h.ListEmployees, http.StatusOK))
	r.POST("/", handler.Handle(h.Handler, h.CreateEmployee, http.StatusCreated))
	r.PUT("/:employee_id", handler.Handle(h.Handler, h.UpdateEmployee, http.StatusOK))
	r.DELETE("/:employee_id", handler.Handle(h.Handler, h.DeleteEmployee, http.StatusOK))
}

// registerAttendanceRoutes mounts /attendance. Echo matches static segments
// before params, so /attendance/mark and /attendance/:emp_id/summary never
// reach the param routes.
func registerAttendanceRoutes(r *echo.Echo, h *handler.AttendanceHandler) {
	attendance := r.Group("/attendance")

	attendance.POST("/mark", handler.Handle(h.Handler, h.MarkAttendance, http.StatusCreated))
	attendance.GET("", handler.Handle(h.Handler, h.ListAttendance, http.StatusOK))
	attendance.GET("/:emp_id", handler.Handle(h.Handler, h.EmployeeAttendance, http.StatusOK))
	attendance.GET("/:emp_id/summary", handler.Handle(h.Handler, h.AttendanceSummary, http.StatusOK))
	attendance.GET("/:emp_id/:date", handler.Handle(h.Handler, h.AttendanceOnDate, http.StatusOK))
}
