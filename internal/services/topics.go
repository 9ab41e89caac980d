package services

// Event bus topics. Each store publishes its full snapshot on its own topic
// synchronously after a successful durable write; the pricing ticker
// publishes the updates of every pass that changed something.
const (
	TopicCartUpdated     = "cart:updated"
	TopicWishlistUpdated = "wishlist:updated"
	TopicSessionUpdated  = "session:updated"
	TopicPricingUpdated  = "pricing:updated"
)
