// internal/api/handlers/interfaces.go (or similar)
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user and auth routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	UpdatePassword(c *gin.Context)
	Me(c *gin.Context)
	GetUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	CreateUser(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	GetJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	ToggleJobStatus(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	GetApplications(c *gin.Context)
	GetApplicationsByJob(c *gin.Context)
	GetMyApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ReviewApplication(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

// InterviewHandlerInterface defines the methods needed by the interview routes.
type InterviewHandlerInterface interface {
	GetInterviews(c *gin.Context)
	GetMyInterviews(c *gin.Context)
	GetInterviewByID(c *gin.Context)
	ScheduleInterview(c *gin.Context)
	UpdateInterview(c *gin.Context)
	DeleteInterview(c *gin.Context)
}

// OfferHandlerInterface defines the methods needed by the offer routes.
type OfferHandlerInterface interface {
	GetOffers(c *gin.Context)
	GetMyOffers(c *gin.Context)
	GetOfferByID(c *gin.Context)
	CreateOffer(c *gin.Context)
	UpdateOffer(c *gin.Context)
	DeleteOffer(c *gin.Context)
}

// EmployeeHandlerInterface defines the methods needed by the employee routes.
type EmployeeHandlerInterface interface {
	GetEmployees(c *gin.Context)
	GetEmployeeByID(c *gin.Context)
	CreateEmployee(c *gin.Context)
	UpdateEmployee(c *gin.Context)
	DeleteEmployee(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ InterviewHandlerInterface = (*InterviewHandler)(nil)
var _ OfferHandlerInterface = (*OfferHandler)(nil)
var _ EmployeeHandlerInterface = (*EmployeeHandler)(nil)
