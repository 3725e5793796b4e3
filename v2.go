package accountkit

import (
	"context"
	"net/http"
	"strconv"
)

const v2BasePath = "/accountkit/v2"

// V2Client exposes the V2 endpoints. Calls authenticate with an OAuth-style
// platform access token; the platform itself travels as a query parameter.
type V2Client struct {
	t *transport
}

func newV2Client(t *transport) *V2Client {
	return &V2Client{t: t}
}

type calculateAccountAddressRequest struct {
	Platform Platform `json:"platform"`
	UserID   string   `json:"userId"`
}

type userOperationsRequest struct {
	UserOps []UserOperation `json:"userOps"`
}

// GetSmartAccount fetches the smart account bound to the identity behind the
// access token.
func (c *V2Client) GetSmartAccount(ctx context.Context, platform Platform, accessToken string) (*Response[SmartAccount], error) {
	return do[SmartAccount](ctx, c.t, http.MethodGet, v2BasePath+"/account",
		map[string]string{"platform": string(platform)},
		platformAuth(accessToken).headers(), nil)
}

// CalculateAccountAddress computes the counterfactual account address for a
// platform identity. No access token is required: the computation is
// deterministic over the identity alone. The result carries no Solana
// address.
func (c *V2Client) CalculateAccountAddress(ctx context.Context, platform Platform, userID string) (*Response[AccountAddresses], error) {
	return do[AccountAddresses](ctx, c.t, http.MethodPost, v2BasePath+"/evm/calculateAccountAddress",
		nil, apiKeyOnly().headers(),
		calculateAccountAddressRequest{Platform: platform, UserID: userID})
}

// SubmitUserOperations submits a batch of user operations on the given
// chain. V1 takes one operation per call; V2 always batches.
func (c *V2Client) SubmitUserOperations(ctx context.Context, platform Platform, accessToken string, userOps []UserOperation, chainID int64) (*Response[SubmitUserOperationResult], error) {
	return do[SubmitUserOperationResult](ctx, c.t, http.MethodPost, v2BasePath+"/evm/userOperations",
		map[string]string{
			"chainId":  strconv.FormatInt(chainID, 10),
			"platform": string(platform),
		},
		platformAuth(accessToken).headers(),
		userOperationsRequest{UserOps: userOps})
}

// SubmitSolanaTransaction submits a base64-serialized Solana transaction on
// behalf of the identity behind the access token.
func (c *V2Client) SubmitSolanaTransaction(ctx context.Context, platform Platform, accessToken string, network SolanaNetwork, serializedTxBase64 string) (*Response[SolanaSubmitResult], error) {
	return do[SolanaSubmitResult](ctx, c.t, http.MethodPost, v2BasePath+"/solana/submitTransaction",
		map[string]string{
			"platform": string(platform),
			"network":  string(network),
		},
		platformAuth(accessToken).headers(),
		solanaSubmitRequest{SerializedTransactionBase64: serializedTxBase64})
}
