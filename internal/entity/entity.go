package entity

// Entity is the closed union over every decodable API shape, used when a
// response's concrete shape is not known before decoding. The set of variants
// is sealed: only the types in this package implement the interface.
//
// Struct variants are held by pointer; the list variants AccountList and
// RelationshipList are held by value.
type Entity interface {
	entityVariant()
}

// AccountList is the Entity variant for a JSON array of accounts.
type AccountList []Account

// RelationshipList is the Entity variant for a JSON array of relationships.
type RelationshipList []Relationship

func (*Account) entityVariant()          {}
func (*Source) entityVariant()           {}
func (*Status) entityVariant()           {}
func (*Attachment) entityVariant()       {}
func (*Poll) entityVariant()             {}
func (*Notification) entityVariant()     {}
func (*Filter) entityVariant()           {}
func (*Instance) entityVariant()         {}
func (*Card) entityVariant()             {}
func (*Context) entityVariant()          {}
func (*ListEntity) entityVariant()       {}
func (*PushSubscription) entityVariant() {}
func (*Relationship) entityVariant()     {}
func (*Results) entityVariant()          {}
func (*ScheduledStatus) entityVariant()  {}
func (*Conversation) entityVariant()     {}
func (*Token) entityVariant()            {}
func (*App) entityVariant()              {}
func (*Application) entityVariant()      {}
func (*Error) entityVariant()            {}
func (AccountList) entityVariant()       {}
func (RelationshipList) entityVariant()  {}
