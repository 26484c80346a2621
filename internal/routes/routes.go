package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/handler"
	"github.com/sinergi-org/sinergi-backend/internal/middleware"
	"github.com/sinergi-org/sinergi-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	programHandler *handler.ProgramHandler,
	meetingHandler *handler.MeetingHandler,
	attendanceHandler *handler.AttendanceHandler,
	memberHandler *handler.MemberHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)

	// Member directory (public read)
	api.GET("/members", memberHandler.ListMembers)

	// Programs (proker)
	programs := api.Group("/programs")
	{
		programs.GET("/:id", programHandler.GetProgram)
		programs.GET("/:id/team", programHandler.GetTeam)
		programs.POST("/:id/status", auth, programHandler.TransitionStatus)
		programs.POST("/:id/lead", auth, programHandler.ChangeLead)
	}

	// Meetings (rapat)
	meetings := api.Group("/meetings")
	{
		meetings.POST("", auth, meetingHandler.CreateMeeting)
		meetings.GET("/:id", meetingHandler.GetMeeting)
		meetings.POST("/:id/status", auth, meetingHandler.TransitionStatus)
		meetings.GET("/:id/audience", meetingHandler.ResolveAudience)
		meetings.PUT("/:id/notes", auth, meetingHandler.UpdateNotes)

		// Attendance roster
		attendance := meetings.Group("/:id/attendance", auth)
		{
			attendance.GET("", attendanceHandler.ListRoster)
			attendance.POST("/generate", attendanceHandler.GenerateRoster)
			attendance.PUT("", attendanceHandler.ReconcileRoster)
			attendance.POST("", attendanceHandler.AddAttendee)
			attendance.DELETE("/:member_id", attendanceHandler.RemoveAttendee)
		}
	}
}
