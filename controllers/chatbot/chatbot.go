package chatbotControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// Intent names the storefront chatbot understands. The inference model that
// maps utterances to these intents lives outside this service; this is the
// contract both sides agree on.
const (
	IntentGreet         = "greet"
	IntentGoodbye       = "goodbye"
	IntentAffirm        = "affirm"
	IntentDeny          = "deny"
	IntentMoodGreat     = "mood_great"
	IntentMoodUnhappy   = "mood_unhappy"
	IntentBotChallenge  = "bot_challenge"
	IntentNeedHelp      = "need_help"
	IntentFindProduct   = "find_product"
	IntentFindByCat     = "find_product_by_category"
	IntentFindByBrand   = "find_product_by_brand"
	IntentTrackOrder    = "track_order"
	IntentCurrentOrder  = "current_order"
	IntentDeliverPolicy = "delivering_policy"
	IntentPaymentPolicy = "payment_policy"
)

// Intents lists every intent the chatbot contract defines.
var Intents = []string{
	IntentGreet,
	IntentGoodbye,
	IntentAffirm,
	IntentDeny,
	IntentMoodGreat,
	IntentMoodUnhappy,
	IntentBotChallenge,
	IntentNeedHelp,
	IntentFindProduct,
	IntentFindByCat,
	IntentFindByBrand,
	IntentTrackOrder,
	IntentCurrentOrder,
	IntentDeliverPolicy,
	IntentPaymentPolicy,
}

// GET /api/chatbot/intents
func GetIntents() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: Intents})
	}
}
