package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Three logically separate stores share one cluster: user records live in
// the main application database, gateway payments in Payment-Records and
// manual receipts in QR-Code-Payment.
const (
	mainDBName      = "aizboostr"
	paymentDBName   = "Payment-Records"
	qrPaymentDBName = "QR-Code-Payment"
)

var (
	connectOnce sync.Once
	client      *mongo.Client
)

// DB returns the shared Mongo client, connecting on first use.
func DB() *mongo.Client {
	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
		if err != nil {
			log.Fatal(err)
		}

		if err := c.Ping(ctx, nil); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Connected to MongoDB")
		client = c
	})
	return client
}

func UserCollection() *mongo.Collection {
	return DB().Database(mainDBName).Collection("users")
}

func PaymentCollection() *mongo.Collection {
	return DB().Database(paymentDBName).Collection("payments")
}

func QRPaymentCollection() *mongo.Collection {
	return DB().Database(qrPaymentDBName).Collection("qrpayments")
}
