// ABOUTME: Static fallback data when OpenAI API key is not available.
// ABOUTME: Provides a diverse set of realistic-looking fake orders.

package seed

import "fmt"

var staticOrderTemplates = []orderData{
	{OrderNumber: "ORD-1001", Customer: "Alice Chen", Status: "completed", Country: "US", TotalCents: 1050, Currency: "USD", ItemsCount: 3, Website: "https://alicechen.dev", FileSizeBytes: 48_211, DaysAgo: 2},
	{OrderNumber: "ORD-1002", Customer: "Bob Martinez", Status: "pending", Country: "MX", TotalCents: 215000, Currency: "USD", DiscountRate: 10, DiscountRateType: "percent", ItemsCount: 12, FileSizeBytes: 102_400, DaysAgo: 1},
	{OrderNumber: "ORD-1003", Customer: "Sarah Johnson", Status: "processing", Country: "GB", TotalCents: 7999, Currency: "GBP", ItemsCount: 1, Website: "https://sarahjphoto.co.uk", FileSizeBytes: 31_002, DaysAgo: 3},
	{OrderNumber: "ORD-1004", Customer: "Kenji Watanabe", Status: "completed", Country: "JP", TotalCents: 12800, Currency: "JPY", ItemsCount: 2, FileSizeBytes: 54_771, DaysAgo: 5},
	{OrderNumber: "ORD-1005", Customer: "Emma Davis", Status: "refunded", Country: "US", TotalCents: 4500, Currency: "USD", DiscountRate: 500, DiscountRateType: "flat", ItemsCount: 1, FileSizeBytes: 22_904, DaysAgo: 8},
	{OrderNumber: "ORD-1006", Customer: "Lukas Schneider", Status: "completed", Country: "DE", TotalCents: 99900, Currency: "EUR", ItemsCount: 5, Website: "https://schneider-gmbh.de", FileSizeBytes: 88_112, DaysAgo: 9},
	{OrderNumber: "ORD-1007", Customer: "Jenna Taylor", Status: "failed", Country: "CA", TotalCents: 15600, Currency: "CAD", ItemsCount: 4, FileSizeBytes: 12_050, DaysAgo: 11},
	{OrderNumber: "ORD-1008", Customer: "Dave Wilson", Status: "completed", Country: "US", TotalCents: 329999, Currency: "USD", DiscountRate: 15, DiscountRateType: "percent", ItemsCount: 24, FileSizeBytes: 412_770, DaysAgo: 14},
	{OrderNumber: "ORD-1009", Customer: "Marie Dubois", Status: "cancelled", Country: "FR", TotalCents: 2250, Currency: "EUR", ItemsCount: 1, FileSizeBytes: 9_882, DaysAgo: 17},
	{OrderNumber: "ORD-1010", Customer: "QA Checkout", Status: "completed", Country: "US", TotalCents: 100, Currency: "USD", ItemsCount: 1, IsTest: true, FileSizeBytes: 4_096, DaysAgo: 20},
	{OrderNumber: "ORD-1011", Customer: "Chris Lee", Status: "pending", Country: "KR", TotalCents: 58000, Currency: "KRW", ItemsCount: 2, Website: "https://chrislee.kr", FileSizeBytes: 67_334, DaysAgo: 23},
	{OrderNumber: "ORD-1012", Customer: "Jane Kim", Status: "completed", Country: "US", TotalCents: 12999, Currency: "USD", ItemsCount: 6, FileSizeBytes: 151_200, DaysAgo: 28},
	{OrderNumber: "ORD-1013", Customer: "Alex Rivera", Status: "processing", Country: "ES", TotalCents: 8450, Currency: "EUR", DiscountRate: 5, DiscountRateType: "percent", ItemsCount: 3, FileSizeBytes: 27_445, DaysAgo: 33},
	{OrderNumber: "ORD-1014", Customer: "Priya Sharma", Status: "completed", Country: "IN", TotalCents: 249900, Currency: "INR", ItemsCount: 9, Website: "https://sharma.example.in", FileSizeBytes: 204_800, DaysAgo: 40},
	{OrderNumber: "ORD-1015", Customer: "Staging Bot", Status: "pending", Country: "US", TotalCents: 999, Currency: "USD", ItemsCount: 1, IsTest: true, FileSizeBytes: 2_048, DaysAgo: 45},
	{OrderNumber: "ORD-1016", Customer: "Mike Brown", Status: "completed", Country: "AU", TotalCents: 45500, Currency: "AUD", ItemsCount: 7, FileSizeBytes: 98_560, DaysAgo: 52},
}

// staticOrders cycles the template set until it has count orders, renumbering
// the extras so order numbers stay unique.
func staticOrders(count int) []orderData {
	if count <= 0 {
		return nil
	}
	orders := make([]orderData, 0, count)
	for i := 0; i < count; i++ {
		o := staticOrderTemplates[i%len(staticOrderTemplates)]
		if i >= len(staticOrderTemplates) {
			o.OrderNumber = fmt.Sprintf("ORD-%d", 1001+i)
			o.DaysAgo = (o.DaysAgo + i) % 90
		}
		orders = append(orders, o)
	}
	return orders
}
