package codec

import "github.com/masto-go/mastogo/internal/entity"

const (
	entityNameNotification     = "Notification"
	entityNameFilter           = "Filter"
	entityNameInstance         = "Instance"
	entityNameURLs             = "URLs"
	entityNameStats            = "Stats"
	entityNameListEntity       = "ListEntity"
	entityNamePushSubscription = "PushSubscription"
	entityNameAlerts           = "Alerts"
	entityNameRelationship     = "Relationship"
	entityNameResults          = "Results"
	entityNameToken            = "Token"
	entityNameApp              = "App"
	entityNameAuthorization    = "Authorization"
	entityNameError            = "Error"
	entityNameAccountList      = "AccountList"
	entityNameRelationshipList = "RelationshipList"
	entityNameStatusList       = "StatusList"
	entityNameNotificationList = "NotificationList"
)

// DecodeNotification decodes one notification. Status is present for
// mention, reblog, and favourite notifications and absent for follows.
func DecodeNotification(data []byte) (*entity.Notification, error) {
	notification, err := decodeNotification(data)
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func decodeNotification(data []byte) (entity.Notification, error) {
	reader := newObjectReader(entityNameNotification, data)
	notification := entity.Notification{
		ID:        reader.requiredString("id"),
		Type:      reader.requiredNotificationType("type"),
		CreatedAt: reader.requiredString("created_at"),
	}
	if raw, present := reader.requiredField("account"); present {
		account, err := decodeAccount(raw)
		if err != nil {
			reader.nested("account", err)
		} else {
			notification.Account = account
		}
	}
	if raw, present := reader.nullableField("status"); present {
		status, err := decodeStatus(raw)
		if err != nil {
			reader.nested("status", err)
		} else {
			notification.Status = &status
		}
	}
	if err := reader.Err(); err != nil {
		return entity.Notification{}, err
	}
	notification.Raw = reader.payload()
	return notification, nil
}

// DecodeFilter decodes one keyword filter.
func DecodeFilter(data []byte) (*entity.Filter, error) {
	filter, err := decodeFilter(data)
	if err != nil {
		return nil, err
	}
	return &filter, nil
}

func decodeFilter(data []byte) (entity.Filter, error) {
	reader := newObjectReader(entityNameFilter, data)
	filter := entity.Filter{
		ID:           reader.requiredString("id"),
		Phrase:       reader.requiredString("phrase"),
		ExpiresAt:    reader.nullableString("expires_at"),
		Irreversible: reader.optionalBool("irreversible", false),
		WholeWord:    reader.optionalBool("whole_word", false),
	}
	filter.Context = reader.filterContextList("context")
	if err := reader.Err(); err != nil {
		return entity.Filter{}, err
	}
	filter.Raw = reader.payload()
	return filter, nil
}

// DecodeInstance decodes a server's self-description.
func DecodeInstance(data []byte) (*entity.Instance, error) {
	instance, err := decodeInstance(data)
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

func decodeInstance(data []byte) (entity.Instance, error) {
	reader := newObjectReader(entityNameInstance, data)
	instance := entity.Instance{
		URI:         reader.requiredString("uri"),
		Title:       reader.requiredString("title"),
		Description: reader.requiredString("description"),
		Email:       reader.requiredString("email"),
		Version:     reader.requiredString("version"),
		Thumbnail:   reader.nullableString("thumbnail"),
		Languages:   reader.stringList("languages"),
	}
	if raw, present := reader.nullableField("urls"); present {
		urls, err := decodeURLs(raw)
		if err != nil {
			reader.nested("urls", err)
		} else {
			instance.URLs = &urls
		}
	}
	if raw, present := reader.requiredField("stats"); present {
		stats, err := decodeStats(raw)
		if err != nil {
			reader.nested("stats", err)
		} else {
			instance.Stats = stats
		}
	}
	if raw, present := reader.nullableField("contact_account"); present {
		account, err := decodeAccount(raw)
		if err != nil {
			reader.nested("contact_account", err)
		} else {
			instance.ContactAccount = &account
		}
	}
	if err := reader.Err(); err != nil {
		return entity.Instance{}, err
	}
	instance.Raw = reader.payload()
	return instance, nil
}

func decodeURLs(data []byte) (entity.URLs, error) {
	reader := newObjectReader(entityNameURLs, data)
	urls := entity.URLs{
		StreamingAPI: reader.requiredString("streaming_api"),
	}
	if err := reader.Err(); err != nil {
		return entity.URLs{}, err
	}
	return urls, nil
}

func decodeStats(data []byte) (entity.Stats, error) {
	reader := newObjectReader(entityNameStats, data)
	stats := entity.Stats{
		UserCount:   reader.optionalInt("user_count", 0),
		StatusCount: reader.optionalInt("status_count", 0),
		DomainCount: reader.optionalInt("domain_count", 0),
	}
	if err := reader.Err(); err != nil {
		return entity.Stats{}, err
	}
	return stats, nil
}

// DecodeListEntity decodes a user-curated account list.
func DecodeListEntity(data []byte) (*entity.ListEntity, error) {
	list, err := decodeListEntity(data)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func decodeListEntity(data []byte) (entity.ListEntity, error) {
	reader := newObjectReader(entityNameListEntity, data)
	list := entity.ListEntity{
		ID:    reader.requiredString("id"),
		Title: reader.requiredString("title"),
	}
	if err := reader.Err(); err != nil {
		return entity.ListEntity{}, err
	}
	list.Raw = reader.payload()
	return list, nil
}

// DecodePushSubscription decodes a Web Push subscription.
func DecodePushSubscription(data []byte) (*entity.PushSubscription, error) {
	subscription, err := decodePushSubscription(data)
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

func decodePushSubscription(data []byte) (entity.PushSubscription, error) {
	reader := newObjectReader(entityNamePushSubscription, data)
	subscription := entity.PushSubscription{
		ID:        reader.requiredString("id"),
		Endpoint:  reader.requiredString("endpoint"),
		ServerKey: reader.requiredString("server_key"),
	}
	if raw, present := reader.requiredField("alerts"); present {
		alerts, err := decodeAlerts(raw)
		if err != nil {
			reader.nested("alerts", err)
		} else {
			subscription.Alerts = alerts
		}
	}
	if err := reader.Err(); err != nil {
		return entity.PushSubscription{}, err
	}
	subscription.Raw = reader.payload()
	return subscription, nil
}

func decodeAlerts(data []byte) (entity.Alerts, error) {
	reader := newObjectReader(entityNameAlerts, data)
	alerts := entity.Alerts{
		Follow:    reader.optionalBool("follow", false),
		Favourite: reader.optionalBool("favourite", false),
		Reblog:    reader.optionalBool("reblog", false),
		Mention:   reader.optionalBool("mention", false),
	}
	if err := reader.Err(); err != nil {
		return entity.Alerts{}, err
	}
	return alerts, nil
}

// DecodeRelationship decodes the authenticated user's relation to an account.
func DecodeRelationship(data []byte) (*entity.Relationship, error) {
	relationship, err := decodeRelationship(data)
	if err != nil {
		return nil, err
	}
	return &relationship, nil
}

func decodeRelationship(data []byte) (entity.Relationship, error) {
	reader := newObjectReader(entityNameRelationship, data)
	relationship := entity.Relationship{
		ID:                  reader.requiredString("id"),
		Following:           reader.requiredBool("following"),
		FollowedBy:          reader.requiredBool("followed_by"),
		Blocking:            reader.requiredBool("blocking"),
		Muting:              reader.requiredBool("muting"),
		MutingNotifications: reader.optionalBool("muting_notifications", false),
		Requested:           reader.optionalBool("requested", false),
		DomainBlocking:      reader.optionalBool("domain_blocking", false),
		ShowingReblogs:      reader.optionalBool("showing_reblogs", false),
		Endorsed:            reader.optionalBool("endorsed", false),
	}
	if err := reader.Err(); err != nil {
		return entity.Relationship{}, err
	}
	relationship.Raw = reader.payload()
	return relationship, nil
}

// DecodeResults decodes a search result set.
func DecodeResults(data []byte) (*entity.Results, error) {
	results, err := decodeResults(data)
	if err != nil {
		return nil, err
	}
	return &results, nil
}

func decodeResults(data []byte) (entity.Results, error) {
	reader := newObjectReader(entityNameResults, data)
	results := entity.Results{}
	reader.requirePresence("accounts")
	reader.requirePresence("statuses")
	reader.requirePresence("hashtags")
	results.Accounts = decodeSlice(reader, "accounts", decodeAccount)
	results.Statuses = decodeSlice(reader, "statuses", decodeStatus)
	results.Hashtags = decodeSlice(reader, "hashtags", decodeTag)
	if err := reader.Err(); err != nil {
		return entity.Results{}, err
	}
	results.Raw = reader.payload()
	return results, nil
}

// DecodeToken decodes an OAuth token-endpoint response.
func DecodeToken(data []byte) (*entity.Token, error) {
	token, err := decodeToken(data)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func decodeToken(data []byte) (entity.Token, error) {
	reader := newObjectReader(entityNameToken, data)
	token := entity.Token{
		AccessToken: reader.requiredString("access_token"),
		TokenType:   reader.requiredString("token_type"),
		Scope:       reader.requiredString("scope"),
		CreatedAt:   reader.optionalInt64("created_at", 0),
	}
	if err := reader.Err(); err != nil {
		return entity.Token{}, err
	}
	token.Raw = reader.payload()
	return token, nil
}

// DecodeApp decodes a registered application with its OAuth credentials.
func DecodeApp(data []byte) (*entity.App, error) {
	app, err := decodeApp(data)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func decodeApp(data []byte) (entity.App, error) {
	reader := newObjectReader(entityNameApp, data)
	app := entity.App{
		ID:           reader.requiredString("id"),
		Name:         reader.requiredString("name"),
		Website:      reader.nullableString("website"),
		RedirectURI:  reader.requiredString("redirect_uri"),
		ClientID:     reader.requiredString("client_id"),
		ClientSecret: reader.requiredString("client_secret"),
		VapidKey:     reader.nullableString("vapid_key"),
	}
	if err := reader.Err(); err != nil {
		return entity.App{}, err
	}
	app.Raw = reader.payload()
	return app, nil
}

// DecodeAuthorization decodes a persisted login record.
func DecodeAuthorization(data []byte) (*entity.Authorization, error) {
	reader := newObjectReader(entityNameAuthorization, data)
	authorization := entity.Authorization{
		ClientID:     reader.requiredString("clientId"),
		ClientSecret: reader.requiredString("clientSecret"),
		Token:        reader.requiredString("token"),
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return &authorization, nil
}

// DecodeErrorEntity decodes an API error body. The HTTP status string is not
// part of the wire payload; the HTTP layer that observed the response
// supplies it here and it is merged into the decoded value.
func DecodeErrorEntity(data []byte, httpStatus string) (*entity.Error, error) {
	reader := newObjectReader(entityNameError, data)
	apiError := entity.Error{
		HTTPStatus:  httpStatus,
		Description: reader.requiredString("error"),
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	apiError.Raw = reader.payload()
	return &apiError, nil
}

// DecodeAccountList decodes a JSON array of accounts.
func DecodeAccountList(data []byte) (entity.AccountList, error) {
	accounts, err := decodeTopLevelSlice(entityNameAccountList, data, decodeAccount)
	if err != nil {
		return nil, err
	}
	return entity.AccountList(accounts), nil
}

// DecodeRelationshipList decodes a JSON array of relationships.
func DecodeRelationshipList(data []byte) (entity.RelationshipList, error) {
	relationships, err := decodeTopLevelSlice(entityNameRelationshipList, data, decodeRelationship)
	if err != nil {
		return nil, err
	}
	return entity.RelationshipList(relationships), nil
}

// DecodeStatusList decodes a JSON array of statuses, the shape of timeline
// responses.
func DecodeStatusList(data []byte) ([]entity.Status, error) {
	return decodeTopLevelSlice(entityNameStatusList, data, decodeStatus)
}

// DecodeNotificationList decodes a JSON array of notifications.
func DecodeNotificationList(data []byte) ([]entity.Notification, error) {
	return decodeTopLevelSlice(entityNameNotificationList, data, decodeNotification)
}
