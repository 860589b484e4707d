package integration_test

import "time"

const (
	TestJWTSecret = "integration-secret-0123456789abcdef"

	// User related constants
	TestUserEmail     = "viola@example.com"
	TestStaffEmail    = "orsino@example.com"
	TestUserFirstName = "Viola"
	TestUserLastName  = "Hathaway"
	TestUserPassword  = "Test123!@#"

	// Theatre related constants
	TestHallName       = "Main Stage"
	TestHallRows       = 3
	TestHallSeatsInRow = 4
	TestPlayTitle      = "Twelfth Night"
)

var TestShowTime = time.Date(2095, 1, 1, 19, 30, 0, 0, time.UTC)
