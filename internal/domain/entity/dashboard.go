package entity

// DeliveryStats are the headline counters of the dashboard.
type DeliveryStats struct {
	DueToday          int64 `json:"dueToday"`
	DueTomorrow       int64 `json:"dueTomorrow"`
	DeliveredToday    int64 `json:"deliveredToday"`
	NotAvailableToday int64 `json:"notAvailableToday"`
	NewOrders         int64 `json:"newOrders"`
}

// ProductDelivery is the delivered quantity of one product.
type ProductDelivery struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
}

// DashboardData is everything the dashboard renders for one month. Nil
// series entries mean no data for that slot.
type DashboardData struct {
	DeliveryStats       DeliveryStats      `json:"deliveryStats"`
	DeliveriesThisMonth []*int64           `json:"deliveriesThisMonth"`
	DeliveriesThisYear  []*int64           `json:"deliveriesThisYear"`
	SalesPerMonth       [3][12]*int64      `json:"salesPerMonth"`
	ProductDeliveries   []*ProductDelivery `json:"productDeliveries"`
}
