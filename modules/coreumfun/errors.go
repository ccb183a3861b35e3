package coreumfun

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ContractError is a failure reported by the contract itself. Chain clients
// only hand back the contract's message as text, so MatchContractError
// recovers the variant and its fields from that text. The package level
// values are sentinels usable with errors.Is.
type ContractError struct {
	Name string
	// Debug-formatted values, e.g. "Uint128(5)" or "TicketSalesOpen"
	Fields map[string]string
	msg    string
	cause  error
}

func (e *ContractError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.msg
}

func (e *ContractError) Unwrap() error {
	return e.cause
}

func (e *ContractError) Is(target error) bool {
	t, ok := target.(*ContractError)
	return ok && t.Name == e.Name
}

type contractErrorDef struct {
	sentinel *ContractError
	format   string
	pattern  *regexp.Regexp
	fields   []string
}

var (
	catalog     []contractErrorDef
	placeholder = regexp.MustCompile(`\{(\w+):\?\}`)
)

// A Debug-formatted value: a quoted string, or a token with up to two levels
// of parentheses such as Uint128(5) or Timestamp(Uint64(1735689600)).
const debugValue = `("(?:[^"\\]|\\.)*"|[^\s(),:"]+(?:\((?:[^()]|\([^()]*\))*\))?)`

func define(name string, format string) *ContractError {
	var fields []string
	var expr strings.Builder
	last := 0
	for _, loc := range placeholder.FindAllStringSubmatchIndex(format, -1) {
		expr.WriteString(regexp.QuoteMeta(format[last:loc[0]]))
		expr.WriteString(debugValue)
		fields = append(fields, format[loc[2]:loc[3]])
		last = loc[1]
	}
	expr.WriteString(regexp.QuoteMeta(format[last:]))

	sentinel := &ContractError{Name: name, msg: placeholder.ReplaceAllString(format, "{$1}")}
	catalog = append(catalog, contractErrorDef{
		sentinel: sentinel,
		format:   format,
		pattern:  regexp.MustCompile(expr.String()),
		fields:   fields,
	})
	return sentinel
}

var (
	ErrUnauthorized                   = define("Unauthorized", "Unauthorized")
	ErrInvalidTicketAmount            = define("InvalidTicketAmount", "Invalid ticket amount")
	ErrInvalidTicketPrice             = define("InvalidTicketPrice", "Invalid ticket price")
	ErrTicketSalesClosed              = define("TicketSalesClosed", "Ticket sales are closed")
	ErrNotEnoughTicketsLeft           = define("NotEnoughTicketsLeft", "Not enough tickets left (requested: {requested:?}, available: {available:?})")
	ErrMaxTicketsPerUserReached       = define("MaxTicketsPerUserReached", "Max tickets per user reached (requested: {requested:?}, available: {available:?})")
	ErrNoFunds                        = define("NoFunds", "No funds sent")
	ErrInsufficientFunds              = define("InsufficientFunds", "Insufficient funds (required: {required:?}, provided: {provided:?})")
	ErrNoTicketsForAddress            = define("NoTicketsForAddress", "No tickets found for address")
	ErrInvalidDrawState               = define("InvalidDrawState", "Invalid draw state (expected: {expected:?}, actual: {actual:?})")
	ErrNotEnoughTickets               = define("NotEnoughTickets", "Not enough tickets (requested: {requested:?}, available: {available:?})")
	ErrUndelegationPeriodNotCompleted = define("UndelegationPeriodNotCompleted", "Undelegation period not completed (current timestamp: {current_timestamp:?}, undelegation timestamp: {undelegation_timestamp:?})")
	ErrNoUndelegationInProgress       = define("NoUndelegationInProgress", "No undelegation in progress")
	ErrInvalidStateTransition         = define("InvalidStateTransition", "Invalid state transition (from: {from:?}, to: {to:?})")
	ErrCannotCloseTicketSales         = define("CannotCloseTicketSales", "Cannot close ticket sales until all tickets are sold")
	ErrUseSelectWinnerFunction        = define("UseSelectWinnerFunction", "Use select_winner function to set winner and start undelegation")
	ErrNotAllTicketsBurned            = define("NotAllTicketsBurned", "Not all tickets have been burned")
	ErrInvalidMigration               = define("InvalidMigration", "Invalid migration (current contract: {current_name:?}, current version: {current_version:?})")
	ErrInvalidTokenParameters         = define("InvalidTokenParameters", "Invalid token parameters")
	ErrTokenAlreadyIssued             = define("TokenAlreadyIssued", "Token already issued")
	ErrTokenQueryFailed               = define("TokenQueryFailed", "Failed to query token metadata")
	ErrDelegationFailed               = define("DelegationFailed", "Failed to delegate tokens")
	ErrUndelegationFailed             = define("UndelegationFailed", "Failed to undelegate tokens")
	ErrRewardsDistributionFailed      = define("RewardsDistributionFailed", "Failed to distribute rewards")
	ErrInvalidAddress                 = define("InvalidAddress", "Invalid address: {address:?}")
	ErrContractPaused                 = define("ContractPaused", "Contract is paused")
	ErrOverflow                       = define("Overflow", "Overflow")
	ErrRewardsCalculationFailed       = define("RewardsCalculationFailed", "Failed to calculate accumulated rewards")
	ErrInvalidQuery                   = define("InvalidQuery", "Invalid query")
	ErrNoWinnerSelected               = define("NoWinnerSelected", "No winner has been selected yet")
	ErrNoRewardsToSend                = define("NoRewardsToSend", "No rewards to send")
)

func init() {
	// a message that contains another one ("Not enough tickets left" and
	// "Not enough tickets") has to be tried first
	sort.SliceStable(catalog, func(i, j int) bool {
		return len(catalog[i].format) > len(catalog[j].format)
	})
}

// MatchContractError finds the contract error carried by err, which is
// usually the error a query or execute promise was rejected with. The
// returned error wraps err.
func MatchContractError(err error) (*ContractError, bool) {
	if err == nil {
		return nil, false
	}
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce, true
	}

	text := err.Error()
	for _, def := range catalog {
		m := def.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		fields := make(map[string]string, len(def.fields))
		for i, name := range def.fields {
			fields[name] = m[i+1]
		}
		return &ContractError{
			Name:   def.sentinel.Name,
			Fields: fields,
			msg:    m[0],
			cause:  err,
		}, true
	}
	return nil, false
}
