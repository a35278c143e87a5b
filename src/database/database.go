package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DatabaseName = "RegisterDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	MemberCollection      *mongo.Collection
	GroupCollection       *mongo.Collection
	AttendanceCollection  *mongo.Collection // attendance_register
	OrientationCollection *mongo.Collection // orientation_details
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว แล้วเตรียม collection + index
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		MemberCollection = GetCollection(DatabaseName, "members")
		GroupCollection = GetCollection(DatabaseName, "groups")
		AttendanceCollection = GetCollection(DatabaseName, "attendance_register")
		OrientationCollection = GetCollection(DatabaseName, "orientation_details")

		// unique index คือ source of truth ของกติกา "1 คน 1 กลุ่ม 1 วัน"
		if err := EnsureIndexes(context.TODO()); err != nil {
			log.Fatal("❌ Failed to ensure indexes:", err)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

// Client คืน mongo client สำหรับเปิด session/transaction
func Client() *mongo.Client {
	return client
}
