package chatService

import "EcommerceChatbot/internal/dataset"

const (
	msgOrderStatus      = "The status for order ID %s is: %s."
	msgOrderNotFound    = "Sorry, I could not find any information for order ID %s."
	msgTopSellingHeader = "Here are the top %d selling products:\n"
	msgTopSellingLine   = "%d. %s\n"
	msgStockLevel       = "There are %d units of \"%s\" left in stock."
	msgProductNotFound  = "Sorry, I could not find a product named \"%s\"."
	msgProductPrice     = "The price of \"%s\" is $%.2f."
	msgPriceUnavailable = "Sorry, I could not find a price for \"%s\"."
	msgOrdersByStatus   = "There are %d orders with the status \"%s\"."
	msgNotReady         = "Sorry, %s data is still loading. Please try again in a moment."
	msgUnavailable      = "Sorry, %s data is unavailable right now. Please try again later."

	msgClarifyOrderID = "Please provide an order ID to check the status (e.g., 'status of order id 12345')."
	msgClarifyProduct = "Please tell me which product you want the price of (e.g., 'what is the price of Classic T-Shirt')."
	msgClarifyStatus  = "Please tell me which order status to count (e.g., 'how many orders are shipped')."

	msgHelp = "I'm sorry, I don't understand. You can ask things like: " +
		"'status of order id 12345', " +
		"'top 5 selling products', " +
		"'how many Classic T-Shirts are in stock', " +
		"'what is the price of Classic T-Shirt' or " +
		"'how many orders are shipped'."
)

var tableLabels = map[dataset.TableName]string{
	dataset.TableProducts:       "product",
	dataset.TableOrders:         "order",
	dataset.TableOrderItems:     "order item",
	dataset.TableInventoryItems: "inventory",
}

func tableLabel(table dataset.TableName) string {
	if label, ok := tableLabels[table]; ok {
		return label
	}
	return string(table)
}
