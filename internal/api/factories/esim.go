package factories

import (
	"fmt"

	"github.com/bluele/factory-go/factory"
	"github.com/brianvoe/gofakeit"
	"github.com/google/uuid"
)

// Subscriber is a typed fixture of what the ESIM service returns per record.
// Field order is the json key order.
type Subscriber struct {
	SubscriberID string `json:"subscriberId"`
	ICCID        string `json:"iccid"`
	MSISDN       string `json:"msisdn"`
	Status       string `json:"status"`
	Country      string `json:"country"`
	DataUsedMB   int    `json:"dataUsedMb"`
}

var SubscriberFactory = factory.NewFactory(
	&Subscriber{},
).Attr("SubscriberID", func(args factory.Args) (interface{}, error) {
	return uuid.NewString(), nil
}).Attr("ICCID", func(args factory.Args) (interface{}, error) {
	return fmt.Sprintf("8944%09d%07d", gofakeit.Number(0, 999999999), gofakeit.Number(0, 9999999)), nil
}).Attr("MSISDN", func(args factory.Args) (interface{}, error) {
	return gofakeit.Phone(), nil
}).Attr("Status", func(args factory.Args) (interface{}, error) {
	if gofakeit.Bool() {
		return "ACTIVE", nil
	}
	return "SUSPENDED", nil
}).Attr("Country", func(args factory.Args) (interface{}, error) {
	return gofakeit.Country(), nil
}).Attr("DataUsedMB", func(args factory.Args) (interface{}, error) {
	return gofakeit.Number(0, 20480), nil
})

// Subscribers creates n fixtures.
func Subscribers(n int) []*Subscriber {
	subscribers := make([]*Subscriber, 0, n)
	for i := 0; i < n; i++ {
		subscribers = append(subscribers, SubscriberFactory.MustCreate().(*Subscriber))
	}
	return subscribers
}

// SubscriberKeys is the header a table of Subscribers renders with.
var SubscriberKeys = []string{"subscriberId", "iccid", "msisdn", "status", "country", "dataUsedMb"}
