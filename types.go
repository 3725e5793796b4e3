package accountkit

import "encoding/json"

// Environment selects the AccountKit deployment a client talks to.
type Environment string

const (
	EnvironmentProd Environment = "prod"
	EnvironmentQA   Environment = "qa"
)

// Platform identifies the identity provider that issued a V2 access token.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformTwitter  Platform = "twitter"
	PlatformGitHub   Platform = "github"
)

// SolanaNetwork selects the Solana cluster for transaction calls.
type SolanaNetwork string

const (
	SolanaMainnet SolanaNetwork = "mainnet"
	SolanaDevnet  SolanaNetwork = "devnet"
)

// SmartAccountAddresses is one smart account's address set. PKPAddress is the
// address of the platform-managed key pair backing the account.
type SmartAccountAddresses struct {
	EVM        string `json:"evm"`
	Solana     string `json:"solana,omitempty"`
	PKPAddress string `json:"pkpAddress,omitempty"`
}

// SmartAccountsResult lists the smart accounts reachable with a bot token.
type SmartAccountsResult struct {
	Accounts []SmartAccountAddresses `json:"accounts"`
}

// SmartAccount is the V2 account detail shape for one platform identity.
type SmartAccount struct {
	EVM        string   `json:"evm"`
	Solana     string   `json:"solana,omitempty"`
	PKPAddress string   `json:"pkpAddress,omitempty"`
	Platform   Platform `json:"platform,omitempty"`
	UserID     string   `json:"userId,omitempty"`
}

// AccountAddresses is the counterfactual address set computed by V2 before
// the account is deployed. It carries no Solana address; the remote
// counterfactual computation is EVM-only.
type AccountAddresses struct {
	EVM        string `json:"evm"`
	PKPAddress string `json:"pkpAddress,omitempty"`
}

// UserOperation is an account-abstraction transaction intent executed on
// behalf of a smart account. Values are passed through opaquely; the remote
// relayer validates and fills in gas fields.
type UserOperation struct {
	Target   string `json:"target"`
	Calldata string `json:"calldata"`
	Value    string `json:"value,omitempty"`
}

// SubmitUserOperationResult identifies a submitted user operation.
type SubmitUserOperationResult struct {
	UserOperationHash string `json:"userOperationHash"`
	ChainID           int64  `json:"chainId"`
}

// UserOperationReceipt is the bundler receipt for an executed user
// operation. Gas and nonce quantities are hex strings as returned by the
// remote service.
type UserOperationReceipt struct {
	UserOpHash    string             `json:"userOpHash"`
	EntryPoint    string             `json:"entryPoint"`
	Sender        string             `json:"sender"`
	Nonce         string             `json:"nonce"`
	Paymaster     string             `json:"paymaster,omitempty"`
	ActualGasCost string             `json:"actualGasCost"`
	ActualGasUsed string             `json:"actualGasUsed"`
	Success       bool               `json:"success"`
	Reason        string             `json:"reason,omitempty"`
	Logs          []Log              `json:"logs"`
	Receipt       TransactionReceipt `json:"receipt"`
}

// TransactionReceipt is the EVM receipt of the bundle transaction that
// carried a user operation.
type TransactionReceipt struct {
	TransactionHash   string `json:"transactionHash"`
	TransactionIndex  string `json:"transactionIndex"`
	BlockHash         string `json:"blockHash"`
	BlockNumber       string `json:"blockNumber"`
	From              string `json:"from"`
	To                string `json:"to,omitempty"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
	GasUsed           string `json:"gasUsed"`
	ContractAddress   string `json:"contractAddress,omitempty"`
	Logs              []Log  `json:"logs"`
	LogsBloom         string `json:"logsBloom"`
	Status            string `json:"status"`
	EffectiveGasPrice string `json:"effectiveGasPrice,omitempty"`
}

// Log is one EVM event log entry.
type Log struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
	BlockHash        string   `json:"blockHash"`
	LogIndex         string   `json:"logIndex"`
	Removed          bool     `json:"removed"`
}

// SolanaSubmitResult identifies a submitted Solana transaction.
type SolanaSubmitResult struct {
	TxSignatureBase64 string `json:"txSignatureBase64"`
}

// SolanaTransactionResponse is the confirmed-transaction lookup result.
// Transaction and Meta are passed through undecoded; their layout is owned
// by the Solana RPC.
type SolanaTransactionResponse struct {
	Slot        uint64          `json:"slot"`
	BlockTime   *int64          `json:"blockTime,omitempty"`
	Transaction json.RawMessage `json:"transaction,omitempty"`
	Meta        json.RawMessage `json:"meta,omitempty"`
}

// LitActionResult is the outcome of a Lit Action execution.
type LitActionResult struct {
	Response   json.RawMessage `json:"response,omitempty"`
	Logs       string          `json:"logs,omitempty"`
	Signatures json.RawMessage `json:"signatures,omitempty"`
}

// WowTokenData describes the token to mint through the Wow launcher.
type WowTokenData struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// WowMintResult identifies a submitted token mint.
type WowMintResult struct {
	UserOperationHash string `json:"userOperationHash"`
	TokenAddress      string `json:"tokenAddress,omitempty"`
	ChainID           int64  `json:"chainId,omitempty"`
}
