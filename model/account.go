package model

// AccountInfo identifies the reservation holding account.
type AccountInfo struct {
	AccountID   string
	AccountName string
}

// AccountCredentials is one linked account's static API credentials, as read
// from the accounts file.
type AccountCredentials struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}
