package accountkit

import (
	"context"
	"net/http"
	"strconv"
)

const v1BasePath = "/accountkit/v1/telegrambot"

// V1Client exposes the V1 endpoints. Every call authenticates with the
// Telegram bot token passed to it, alongside the client-wide API key.
type V1Client struct {
	t *transport
}

func newV1Client(t *transport) *V1Client {
	return &V1Client{t: t}
}

type solanaSubmitRequest struct {
	SerializedTransactionBase64 string `json:"serializedTransactionBase64"`
}

type litActionRequest struct {
	ActionIpfs     string `json:"actionIpfs"`
	ActionJsParams any    `json:"actionJsParams"`
}

// GetSmartAccounts lists the smart accounts provisioned for the bot.
func (c *V1Client) GetSmartAccounts(ctx context.Context, botToken string) (*Response[SmartAccountsResult], error) {
	return do[SmartAccountsResult](ctx, c.t, http.MethodGet, v1BasePath+"/accounts",
		nil, botAuth(botToken).headers(), nil)
}

// SubmitSolanaTransaction submits a base64-serialized Solana transaction for
// signing and broadcast on the given network.
func (c *V1Client) SubmitSolanaTransaction(ctx context.Context, botToken, serializedTxBase64 string, network SolanaNetwork) (*Response[SolanaSubmitResult], error) {
	return do[SolanaSubmitResult](ctx, c.t, http.MethodPost, v1BasePath+"/solana/submitTransaction",
		map[string]string{"network": string(network)},
		botAuth(botToken).headers(),
		solanaSubmitRequest{SerializedTransactionBase64: serializedTxBase64})
}

// GetSolanaTransactionResponse looks up a previously submitted Solana
// transaction by signature.
func (c *V1Client) GetSolanaTransactionResponse(ctx context.Context, botToken, txSignatureBase64 string, network SolanaNetwork) (*Response[SolanaTransactionResponse], error) {
	return do[SolanaTransactionResponse](ctx, c.t, http.MethodGet, v1BasePath+"/solana/transactionResponse",
		map[string]string{
			"network":           string(network),
			"txSignatureBase64": txSignatureBase64,
		},
		botAuth(botToken).headers(), nil)
}

// SubmitUserOperation submits a single user operation on the given chain.
// V2 submits batches; V1 takes one operation per call.
func (c *V1Client) SubmitUserOperation(ctx context.Context, botToken string, userOp UserOperation, chainID int64) (*Response[SubmitUserOperationResult], error) {
	return do[SubmitUserOperationResult](ctx, c.t, http.MethodPost, v1BasePath+"/evm/submitUserOperation",
		map[string]string{"chainId": strconv.FormatInt(chainID, 10)},
		botAuth(botToken).headers(), userOp)
}

// GetUserOperationReceipt fetches the bundler receipt for a submitted user
// operation. The remote service returns no receipt until the operation is
// included in a block.
func (c *V1Client) GetUserOperationReceipt(ctx context.Context, botToken, userOpHash string, chainID int64) (*Response[UserOperationReceipt], error) {
	return do[UserOperationReceipt](ctx, c.t, http.MethodGet, v1BasePath+"/evm/userOperationReceipt",
		map[string]string{
			"chainId":           strconv.FormatInt(chainID, 10),
			"userOperationHash": userOpHash,
		},
		botAuth(botToken).headers(), nil)
}

// ExecuteLitAction executes a Lit Action published at the given IPFS CID
// with the bot's PKP. actionJsParams is marshaled as-is into the request.
func (c *V1Client) ExecuteLitAction(ctx context.Context, botToken, actionIpfs string, actionJsParams any, chainID int64) (*Response[LitActionResult], error) {
	return do[LitActionResult](ctx, c.t, http.MethodPost, v1BasePath+"/evm/executeLitAction",
		map[string]string{"chainId": strconv.FormatInt(chainID, 10)},
		botAuth(botToken).headers(),
		litActionRequest{ActionIpfs: actionIpfs, ActionJsParams: actionJsParams})
}

// MintWowToken mints a token through the Wow launcher on the given chain.
func (c *V1Client) MintWowToken(ctx context.Context, botToken string, tokenData WowTokenData, chainID int64) (*Response[WowMintResult], error) {
	return do[WowMintResult](ctx, c.t, http.MethodPost, v1BasePath+"/evm/mintWowToken",
		map[string]string{"chainId": strconv.FormatInt(chainID, 10)},
		botAuth(botToken).headers(), tokenData)
}
