package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "github.com/SaladRabbit/registerv2/docs"
	"github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/jobs"
	"github.com/SaladRabbit/registerv2/src/middleware"
	"github.com/SaladRabbit/registerv2/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Check-in & Orientation API
// @version 1.0
// @description Member check-in and orientation registration flow for recurring group meetings
// @BasePath /api
func main() {

	// เชื่อมต่อ MongoDB (โหลด .env ในนั้น)
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq เป็น optional - ไม่มีก็รันได้ แค่ไม่มี cache/เมลต้อนรับ
	database.InitRedis()
	database.InitAsynq()
	go jobs.StartWorker()

	// สร้าง app instance
	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000" // frontend dev server
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true, // ต้องเป็น true เพราะ flow นี้พึ่ง cookie
	}))

	// "bouncer" - บังคับหน้าให้ตรงกับสถานะเช็คอินของ user
	app.Use(middleware.SessionGate)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
