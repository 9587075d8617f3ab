package models

// TemplateType defines who can see a template
type TemplateType string

const (
	TemplateTypePublic  TemplateType = "PUBLIC"
	TemplateTypePrivate TemplateType = "PRIVATE"
)

// DocumentDistributionMethod defines how a generated document reaches its recipients
type DocumentDistributionMethod string

const (
	DistributionMethodEmail DocumentDistributionMethod = "EMAIL"
	DistributionMethodNone  DocumentDistributionMethod = "NONE"
)

// DocumentSigningOrder defines whether recipients sign one after another or all at once
type DocumentSigningOrder string

const (
	SigningOrderParallel   DocumentSigningOrder = "PARALLEL"
	SigningOrderSequential DocumentSigningOrder = "SEQUENTIAL"
)

// DocumentAccessAuth is the authentication required to view a document
type DocumentAccessAuth string

const (
	DocumentAccessAuthAccount DocumentAccessAuth = "ACCOUNT"
)

// DocumentActionAuth is the authentication required to act on a document
type DocumentActionAuth string

const (
	DocumentActionAuthAccount       DocumentActionAuth = "ACCOUNT"
	DocumentActionAuthPasskey       DocumentActionAuth = "PASSKEY"
	DocumentActionAuthTwoFactorAuth DocumentActionAuth = "TWO_FACTOR_AUTH"
)

// RecipientActionAuth is the authentication a recipient presented when signing a field.
// It extends DocumentActionAuth with an explicit opt-out.
type RecipientActionAuth string

const (
	RecipientActionAuthAccount       RecipientActionAuth = "ACCOUNT"
	RecipientActionAuthPasskey       RecipientActionAuth = "PASSKEY"
	RecipientActionAuthTwoFactorAuth RecipientActionAuth = "TWO_FACTOR_AUTH"
	RecipientActionAuthExplicitNone  RecipientActionAuth = "EXPLICIT_NONE"
)

// DocumentStatus defines the lifecycle state of a document created from a template
type DocumentStatus string

const (
	DocumentStatusDraft   DocumentStatus = "DRAFT"
	DocumentStatusPending DocumentStatus = "PENDING"
)

// DocumentSource records how a document was created
type DocumentSource string

const (
	DocumentSourceTemplate           DocumentSource = "TEMPLATE"
	DocumentSourceTemplateDirectLink DocumentSource = "TEMPLATE_DIRECT_LINK"
)

// IsValid checks if the TemplateType is valid
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypePublic, TemplateTypePrivate:
		return true
	}
	return false
}

// IsValid checks if the DocumentDistributionMethod is valid
func (m DocumentDistributionMethod) IsValid() bool {
	switch m {
	case DistributionMethodEmail, DistributionMethodNone:
		return true
	}
	return false
}

// IsValid checks if the DocumentSigningOrder is valid
func (o DocumentSigningOrder) IsValid() bool {
	switch o {
	case SigningOrderParallel, SigningOrderSequential:
		return true
	}
	return false
}

// IsValid checks if the DocumentAccessAuth is valid
func (a DocumentAccessAuth) IsValid() bool {
	return a == DocumentAccessAuthAccount
}

// IsValid checks if the DocumentActionAuth is valid
func (a DocumentActionAuth) IsValid() bool {
	switch a {
	case DocumentActionAuthAccount, DocumentActionAuthPasskey, DocumentActionAuthTwoFactorAuth:
		return true
	}
	return false
}

// IsValid checks if the RecipientActionAuth is valid
func (a RecipientActionAuth) IsValid() bool {
	switch a {
	case RecipientActionAuthAccount, RecipientActionAuthPasskey, RecipientActionAuthTwoFactorAuth, RecipientActionAuthExplicitNone:
		return true
	}
	return false
}

// TemplateTypeValues lists the accepted template types in declaration order.
func TemplateTypeValues() []string {
	return []string{string(TemplateTypePublic), string(TemplateTypePrivate)}
}

// DistributionMethodValues lists the accepted distribution methods.
func DistributionMethodValues() []string {
	return []string{string(DistributionMethodEmail), string(DistributionMethodNone)}
}

// SigningOrderValues lists the accepted signing orders.
func SigningOrderValues() []string {
	return []string{string(SigningOrderParallel), string(SigningOrderSequential)}
}

// DocumentAccessAuthValues lists the accepted access auth types.
func DocumentAccessAuthValues() []string {
	return []string{string(DocumentAccessAuthAccount)}
}

// DocumentActionAuthValues lists the accepted action auth types.
func DocumentActionAuthValues() []string {
	return []string{
		string(DocumentActionAuthAccount),
		string(DocumentActionAuthPasskey),
		string(DocumentActionAuthTwoFactorAuth),
	}
}

// RecipientActionAuthValues lists the accepted recipient action auth types.
func RecipientActionAuthValues() []string {
	return []string{
		string(RecipientActionAuthAccount),
		string(RecipientActionAuthPasskey),
		string(RecipientActionAuthTwoFactorAuth),
		string(RecipientActionAuthExplicitNone),
	}
}
