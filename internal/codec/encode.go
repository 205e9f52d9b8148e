package codec

import (
	"encoding/json"
	"fmt"

	"github.com/masto-go/mastogo/internal/entity"
)

const errMessageUnhandledEntityVariant = "encode: unhandled entity variant %T"

// Encoders are the inverse of the decoders: the JSON they produce decodes
// back to the same typed fields. The Raw passthrough field has no wire
// representation and is never re-emitted, and neither is the HTTP status
// merged into an Error entity.

// EncodeAccount encodes an account as wire JSON.
func EncodeAccount(account *entity.Account) ([]byte, error) {
	return json.Marshal(account)
}

// EncodeSource encodes an account preference block as wire JSON.
func EncodeSource(source *entity.Source) ([]byte, error) {
	return json.Marshal(source)
}

// EncodeField encodes a profile field as wire JSON.
func EncodeField(field entity.Field) ([]byte, error) {
	return json.Marshal(field)
}

// EncodeEmoji encodes a custom emoji as wire JSON.
func EncodeEmoji(emoji entity.Emoji) ([]byte, error) {
	return json.Marshal(emoji)
}

// EncodeStatus encodes a status as wire JSON.
func EncodeStatus(status *entity.Status) ([]byte, error) {
	return json.Marshal(status)
}

// EncodeAttachment encodes a media attachment as wire JSON.
func EncodeAttachment(attachment *entity.Attachment) ([]byte, error) {
	return json.Marshal(attachment)
}

// EncodeCard encodes a preview card as wire JSON.
func EncodeCard(card *entity.Card) ([]byte, error) {
	return json.Marshal(card)
}

// EncodePoll encodes a poll as wire JSON.
func EncodePoll(poll *entity.Poll) ([]byte, error) {
	return json.Marshal(poll)
}

// EncodeApplication encodes an application stamp as wire JSON.
func EncodeApplication(application *entity.Application) ([]byte, error) {
	return json.Marshal(application)
}

// EncodeContext encodes a status thread as wire JSON.
func EncodeContext(threadContext *entity.Context) ([]byte, error) {
	return json.Marshal(threadContext)
}

// EncodeScheduledStatus encodes a scheduled status as wire JSON.
func EncodeScheduledStatus(scheduled *entity.ScheduledStatus) ([]byte, error) {
	return json.Marshal(scheduled)
}

// EncodeConversation encodes a direct-message thread as wire JSON.
func EncodeConversation(conversation *entity.Conversation) ([]byte, error) {
	return json.Marshal(conversation)
}

// EncodeNotification encodes a notification as wire JSON.
func EncodeNotification(notification *entity.Notification) ([]byte, error) {
	return json.Marshal(notification)
}

// EncodeFilter encodes a keyword filter as wire JSON.
func EncodeFilter(filter *entity.Filter) ([]byte, error) {
	return json.Marshal(filter)
}

// EncodeInstance encodes a server description as wire JSON.
func EncodeInstance(instance *entity.Instance) ([]byte, error) {
	return json.Marshal(instance)
}

// EncodeListEntity encodes an account list record as wire JSON.
func EncodeListEntity(list *entity.ListEntity) ([]byte, error) {
	return json.Marshal(list)
}

// EncodePushSubscription encodes a push subscription as wire JSON.
func EncodePushSubscription(subscription *entity.PushSubscription) ([]byte, error) {
	return json.Marshal(subscription)
}

// EncodeRelationship encodes a relationship as wire JSON.
func EncodeRelationship(relationship *entity.Relationship) ([]byte, error) {
	return json.Marshal(relationship)
}

// EncodeResults encodes a search result set as wire JSON.
func EncodeResults(results *entity.Results) ([]byte, error) {
	return json.Marshal(results)
}

// EncodeToken encodes an OAuth token as wire JSON.
func EncodeToken(token *entity.Token) ([]byte, error) {
	return json.Marshal(token)
}

// EncodeApp encodes a registered application as wire JSON.
func EncodeApp(app *entity.App) ([]byte, error) {
	return json.Marshal(app)
}

// EncodeAuthorization encodes a persisted login record.
func EncodeAuthorization(authorization *entity.Authorization) ([]byte, error) {
	return json.Marshal(authorization)
}

// EncodeErrorEntity encodes an API error body. Only the error description is
// emitted; the HTTP status is not part of the wire payload.
func EncodeErrorEntity(apiError *entity.Error) ([]byte, error) {
	return json.Marshal(apiError)
}

// EncodeAccountList encodes a JSON array of accounts.
func EncodeAccountList(accounts entity.AccountList) ([]byte, error) {
	return json.Marshal([]entity.Account(accounts))
}

// EncodeRelationshipList encodes a JSON array of relationships.
func EncodeRelationshipList(relationships entity.RelationshipList) ([]byte, error) {
	return json.Marshal([]entity.Relationship(relationships))
}

// EncodeStatusList encodes a JSON array of statuses.
func EncodeStatusList(statuses []entity.Status) ([]byte, error) {
	return json.Marshal(statuses)
}

// EncodeEntity dispatches over the closed entity union.
func EncodeEntity(value entity.Entity) ([]byte, error) {
	switch typed := value.(type) {
	case *entity.Account:
		return EncodeAccount(typed)
	case *entity.Source:
		return EncodeSource(typed)
	case *entity.Status:
		return EncodeStatus(typed)
	case *entity.Attachment:
		return EncodeAttachment(typed)
	case *entity.Poll:
		return EncodePoll(typed)
	case *entity.Notification:
		return EncodeNotification(typed)
	case *entity.Filter:
		return EncodeFilter(typed)
	case *entity.Instance:
		return EncodeInstance(typed)
	case *entity.Card:
		return EncodeCard(typed)
	case *entity.Context:
		return EncodeContext(typed)
	case *entity.ListEntity:
		return EncodeListEntity(typed)
	case *entity.PushSubscription:
		return EncodePushSubscription(typed)
	case *entity.Relationship:
		return EncodeRelationship(typed)
	case *entity.Results:
		return EncodeResults(typed)
	case *entity.ScheduledStatus:
		return EncodeScheduledStatus(typed)
	case *entity.Conversation:
		return EncodeConversation(typed)
	case *entity.Token:
		return EncodeToken(typed)
	case *entity.App:
		return EncodeApp(typed)
	case *entity.Application:
		return EncodeApplication(typed)
	case *entity.Error:
		return EncodeErrorEntity(typed)
	case entity.AccountList:
		return EncodeAccountList(typed)
	case entity.RelationshipList:
		return EncodeRelationshipList(typed)
	default:
		return nil, fmt.Errorf(errMessageUnhandledEntityVariant, value)
	}
}
