package xerrors

import "strings"

// rule is one entry of the pure, network-free classification table:
// a lower-cased substring (or RPC error code) mapped to a Kind and an
// optional human template. Unit-testable with no network in sight.
type rule struct {
	substr   string
	code     int
	hasCode  bool
	kind     Kind
	template string
}

// revertTable holds the known contract revert strings, longest/most
// specific first so a short fragment doesn't shadow a longer one.
var revertTable = []rule{
	{substr: "library does not exist", kind: KindNotFound, template: "library does not exist"},
	{substr: "version does not exist", kind: KindNotFound, template: "version does not exist"},
	{substr: "caller is not the owner", kind: KindPermission, template: "caller is not the owner"},
	{substr: "not authorized", kind: KindPermission, template: "caller is not authorized"},
	{substr: "cannot authorize owner", kind: KindPermission, template: "the owner is always authorized"},
	{substr: "cannot revoke owner", kind: KindPermission, template: "the owner's access cannot be revoked"},
	{substr: "version already exists", kind: KindConflict, template: "that version has already been published"},
	{substr: "library already exists", kind: KindConflict, template: "a library with that name is already registered"},
	{substr: "license already owned", kind: KindConflict, template: "the caller already holds a license for this library"},
	{substr: "library is not private", kind: KindPolicy, template: "library is not private"},
	{substr: "license not required", kind: KindPolicy, template: "this library does not require a license"},
	{substr: "license is not required", kind: KindPolicy, template: "this library does not require a license"},
	{substr: "private library", kind: KindPolicy, template: "private libraries cannot also require a license"},
	{substr: "cannot delete library with published versions", kind: KindPolicy, template: "the library still has published versions"},
	{substr: "insufficient ether sent", kind: KindFunds, template: "insufficient ether sent"},
	{substr: "insufficient funds", kind: KindFunds, template: "the account has insufficient funds"},
}

// rpcTable holds known JSON-RPC / provider error codes and substrings.
var rpcTable = []rule{
	{substr: "insufficient funds", kind: KindFunds, template: "the account has insufficient funds"},
	{substr: "nonce too low", kind: KindTx, template: "transaction nonce is stale; resubmit"},
	{substr: "nonce-too-low", kind: KindTx, template: "transaction nonce is stale; resubmit"},
	{substr: "replacement transaction underpriced", kind: KindTx, template: "replacement transaction underpriced"},
	{substr: "replacement-underpriced", kind: KindTx, template: "replacement transaction underpriced"},
	{substr: "user denied", kind: KindTx, template: "transaction was rejected by the signer"},
	{substr: "user rejected", kind: KindTx, template: "transaction was rejected by the signer"},
	{substr: "unpredictable gas limit", kind: KindTx, template: "could not estimate gas; the call would likely revert"},
	{substr: "execution reverted", kind: KindUnknown, template: ""},
	{substr: "call exception", kind: KindUnknown, template: ""},
	{code: -32000, hasCode: true, kind: KindTx, template: "the node rejected the transaction"},
	{code: -32003, hasCode: true, kind: KindTx, template: "transaction rejected: invalid or underpriced"},
}

// cleanPrefixes are stripped (in order) from the outermost message before
// it is shown to the user or used as the UNKNOWN fallback text.
var cleanPrefixes = []string{
	"execution reverted: ",
	"Error: ",
	"RPC Error: ",
}

func cleanMessage(msg string) string {
	for _, p := range cleanPrefixes {
		if strings.HasPrefix(msg, p) {
			msg = strings.TrimPrefix(msg, p)
		}
	}
	return strings.TrimSpace(msg)
}

func matchRevert(msg string) (rule, bool) {
	lower := strings.ToLower(msg)
	for _, r := range revertTable {
		if strings.Contains(lower, r.substr) {
			return r, true
		}
	}
	return rule{}, false
}

// matchRPCCode matches a JSON-RPC / provider error code against the table.
func matchRPCCode(code int) (rule, bool) {
	for _, r := range rpcTable {
		if r.hasCode && r.code == code {
			return r, true
		}
	}
	return rule{}, false
}

// matchRPCSubstring matches a message against the table's substring rules.
func matchRPCSubstring(msg string) (rule, bool) {
	lower := strings.ToLower(msg)
	for _, r := range rpcTable {
		if r.hasCode {
			continue
		}
		if strings.Contains(lower, r.substr) {
			return r, true
		}
	}
	return rule{}, false
}
