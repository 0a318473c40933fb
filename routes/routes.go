package routes

import (
	"aircnc-booking/config"
	authController "aircnc-booking/controllers/auth"
	bookingController "aircnc-booking/controllers/booking"
	paymentController "aircnc-booking/controllers/payment"
	roomController "aircnc-booking/controllers/room"
	userController "aircnc-booking/controllers/user"
	paymentService "aircnc-booking/httpServices/payment"
	"aircnc-booking/logger"
	"aircnc-booking/middleware"
	"aircnc-booking/repository"
	"aircnc-booking/services/reservation"
	"aircnc-booking/services/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.App) {
	tokens := token.NewService(cfg.JWTAccessToken)
	gateway := paymentService.NewClient(cfg.StripeBaseURL, cfg.StripeSecret)

	rooms := repository.NewRoomStore(db)
	ledger := repository.NewBookingLedger(db)
	users := repository.NewUserStore(db)
	engine := reservation.NewEngine(rooms, ledger, gateway)

	asyncLogger := logger.NewAsyncLogger(db)
	auth := authController.NewAuthController(tokens)
	payment := paymentController.NewPaymentController(gateway)
	room := roomController.NewRoomController(rooms, ledger, engine)
	booking := bookingController.NewBookingController(engine)
	user := userController.NewUserController(users)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	requireAuth := middleware.RequireAuth(tokens)

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AirCNC Server is running..")
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Post("/jwt", auth.CreateToken)
	app.Post("/create-payment-intent", payment.CreateIntent)

	app.Get("/all-rooms", room.Index)
	app.Get("/room/:id", room.Show)
	app.Get("/my-bookings-room/:email", booking.GuestBookings)
	app.Get("/booked-room", booking.HostBookings)
	app.Get("/user/:email", user.Show)

	/*=============================================================================
	| Protected Routes (bearer token + resource-owner checks in the handlers)
	===============================================================================*/
	app.Get("/rooms/:email", requireAuth, room.HostedRooms)
	app.Post("/add-rooms", requireAuth, room.Store)
	app.Put("/room-update/:id", requireAuth, room.Update)
	app.Delete("/delete-room/:id", requireAuth, room.Delete)
	app.Patch("/room/status/:id", requireAuth, room.SetStatus)

	app.Post("/room-bookings", requireAuth, booking.Store)
	app.Delete("/delete-booking/:id", requireAuth, booking.Delete)

	app.Put("/users/:email", requireAuth, user.Upsert)
}
