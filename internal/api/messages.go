package api

// ServiceName is the fully qualified gRPC service name of the store.
const ServiceName = "staffdesk.store.CredentialStore"

// Method names, and the full paths used by clients and interceptors.
const (
	FindAccount     = "FindAccount"
	GetAccount      = "GetAccount"
	ListCredentials = "ListCredentials"
	Ping            = "Ping"

	MethodFindAccount     = "/" + ServiceName + "/" + FindAccount
	MethodGetAccount      = "/" + ServiceName + "/" + GetAccount
	MethodListCredentials = "/" + ServiceName + "/" + ListCredentials
	MethodPing            = "/" + ServiceName + "/" + Ping
)

// Account is the store's view of an account. The password hash never
// leaves the store.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
	IsActive bool   `json:"is_active"`
}

// Credential binds a base64url credential id to an account.
type Credential struct {
	CredentialID string `json:"credential_id"`
	AccountID    string `json:"account_id"`
}

type FindAccountRequest struct {
	Username string `json:"username"`
	Password []byte `json:"password"`
}

type GetAccountRequest struct {
	ID string `json:"id"`
}

type AccountResponse struct {
	Account Account `json:"account"`
}

type ListCredentialsRequest struct{}

type ListCredentialsResponse struct {
	Credentials []Credential `json:"credentials"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
