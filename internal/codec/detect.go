package codec

import "github.com/masto-go/mastogo/internal/entity"

const entityNameEntity = "Entity"

// entityProbe pairs an entity name with a decode attempt for DetectEntity.
type entityProbe struct {
	name   string
	decode func([]byte) (entity.Entity, error)
}

// detectionOrder is the fixed trial order of DetectEntity. The order is
// significant and deliberately deterministic: shapes are tried from the
// largest required-field set to the smallest, so that payloads satisfying an
// optional-heavy shape's requirements still resolve to the most specific
// shape first. Object shapes precede the array shapes; AccountList precedes
// RelationshipList, so an empty JSON array resolves to AccountList.
//
// Changing this order changes which shape an ambiguous payload resolves to.
var detectionOrder = []entityProbe{
	{entityNameAccount, func(data []byte) (entity.Entity, error) { return DecodeAccount(data) }},
	{entityNameStatus, func(data []byte) (entity.Entity, error) { return DecodeStatus(data) }},
	{entityNameInstance, func(data []byte) (entity.Entity, error) { return DecodeInstance(data) }},
	{entityNameNotification, func(data []byte) (entity.Entity, error) { return DecodeNotification(data) }},
	{entityNameScheduledStatus, func(data []byte) (entity.Entity, error) { return DecodeScheduledStatus(data) }},
	{entityNamePushSubscription, func(data []byte) (entity.Entity, error) { return DecodePushSubscription(data) }},
	{entityNameApp, func(data []byte) (entity.Entity, error) { return DecodeApp(data) }},
	{entityNameAttachment, func(data []byte) (entity.Entity, error) { return DecodeAttachment(data) }},
	{entityNameCard, func(data []byte) (entity.Entity, error) { return DecodeCard(data) }},
	{entityNameRelationship, func(data []byte) (entity.Entity, error) { return DecodeRelationship(data) }},
	{entityNameToken, func(data []byte) (entity.Entity, error) { return DecodeToken(data) }},
	{entityNameFilter, func(data []byte) (entity.Entity, error) { return DecodeFilter(data) }},
	{entityNameListEntity, func(data []byte) (entity.Entity, error) { return DecodeListEntity(data) }},
	{entityNameContext, func(data []byte) (entity.Entity, error) { return DecodeContext(data) }},
	{entityNameResults, func(data []byte) (entity.Entity, error) { return DecodeResults(data) }},
	{entityNameConversation, func(data []byte) (entity.Entity, error) { return DecodeConversation(data) }},
	{entityNamePoll, func(data []byte) (entity.Entity, error) { return DecodePoll(data) }},
	{entityNameSource, func(data []byte) (entity.Entity, error) { return DecodeSource(data) }},
	{entityNameApplication, func(data []byte) (entity.Entity, error) { return DecodeApplication(data) }},
	{entityNameError, func(data []byte) (entity.Entity, error) { return DecodeErrorEntity(data, "") }},
	{entityNameAccountList, func(data []byte) (entity.Entity, error) { return DecodeAccountList(data) }},
	{entityNameRelationshipList, func(data []byte) (entity.Entity, error) { return DecodeRelationshipList(data) }},
}

// DetectEntity decodes a payload whose entity shape is not known ahead of
// time. Every decoder in detectionOrder is tried in turn and the first
// success wins; when all candidates fail the result is a NoMatchingShape
// error.
func DetectEntity(data []byte) (entity.Entity, error) {
	for _, probe := range detectionOrder {
		decoded, err := probe.decode(data)
		if err == nil {
			return decoded, nil
		}
	}
	return nil, &DecodeError{Entity: entityNameEntity, Reason: ReasonNoMatchingShape}
}

// DetectionOrder reports the entity names DetectEntity tries, in order.
func DetectionOrder() []string {
	names := make([]string, 0, len(detectionOrder))
	for _, probe := range detectionOrder {
		names = append(names, probe.name)
	}
	return names
}
