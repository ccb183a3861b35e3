package coreumfun

import (
	"coreum-fun/lib/wasmclient"

	"github.com/moznion/go-optional"
)

// DrawState is the stage of the current draw. The contract moves through the
// states in declaration order.
type DrawState string

const (
	TicketSalesOpen                        DrawState = "TicketSalesOpen"
	TicketsSoldOutAccumulationInProgress   DrawState = "TicketsSoldOutAccumulationInProgress"
	WinnerSelectedUndelegationInProcess    DrawState = "WinnerSelectedUndelegationInProcess"
	UndelegationCompletedTokensCanBeBurned DrawState = "UndelegationCompletedTokensCanBeBurned"
	DrawFinished                           DrawState = "DrawFinished"
)

var DrawStates = []DrawState{
	TicketSalesOpen,
	TicketsSoldOutAccumulationInProgress,
	WinnerSelectedUndelegationInProcess,
	UndelegationCompletedTokensCanBeBurned,
	DrawFinished,
}

func (s DrawState) Valid() bool {
	for _, v := range DrawStates {
		if s == v {
			return true
		}
	}
	return false
}

type ParticipantInfo struct {
	Address string             `json:"address"`
	Tickets wasmclient.Uint128 `json:"tickets"`
	// formatted as a percentage, e.g. "12.50%"
	WinChance string `json:"win_chance"`
}

type ClaimInfo struct {
	Address string             `json:"address"`
	Amount  wasmclient.Uint128 `json:"amount"`
}

type BalanceResponse struct {
	Balance wasmclient.Uint128 `json:"balance"`
}

type ParticipantsResponse struct {
	Participants      []ParticipantInfo `json:"participants"`
	TotalParticipants uint64            `json:"total_participants"`
}

type WinnerResponse struct {
	Winner  optional.Option[string] `json:"winner"`
	Rewards wasmclient.Uint128      `json:"rewards"`
}

type CurrentStateResponse struct {
	State                     DrawState               `json:"state"`
	UndelegationDoneTimestamp optional.Option[uint64] `json:"undelegation_done_timestamp"`
}

type TicketsSoldResponse struct {
	TotalTickets     wasmclient.Uint128 `json:"total_tickets"`
	TicketsSold      wasmclient.Uint128 `json:"tickets_sold"`
	TicketsRemaining wasmclient.Uint128 `json:"tickets_remaining"`
}

type BonusRewardsResponse struct {
	BonusRewards wasmclient.Uint128 `json:"bonus_rewards"`
}

type AccumulatedRewardsResponse struct {
	AccumulatedRewards wasmclient.Uint128 `json:"accumulated_rewards"`
}

type AccumulatedRewardsAtUndelegationResponse struct {
	AccumulatedRewards wasmclient.Uint128 `json:"accumulated_rewards"`
}

type DraftTvlResponse struct {
	Tvl   wasmclient.Uint128 `json:"tvl"`
	Denom string             `json:"denom"`
}

type TicketHoldersResponse struct {
	Holders      []ParticipantInfo `json:"holders"`
	TotalHolders uint64            `json:"total_holders"`
}

type UserTicketsResponse struct {
	Address string             `json:"address"`
	Tickets wasmclient.Uint128 `json:"tickets"`
}

type UserWinChanceResponse struct {
	Address   string             `json:"address"`
	Tickets   wasmclient.Uint128 `json:"tickets"`
	WinChance string             `json:"win_chance"`
}

type TotalBurnedResponse struct {
	TotalBurned wasmclient.Uint128 `json:"total_burned"`
}

type ClaimsResponse struct {
	Claims       []ClaimInfo        `json:"claims"`
	TotalClaimed wasmclient.Uint128 `json:"total_claimed"`
}

// DelegatedAmountResponse reports zero of the core denom when nothing is
// delegated.
type DelegatedAmountResponse struct {
	Amount wasmclient.Coin `json:"amount"`
}

// ContractConfigResponse is the contract's stored configuration.
type ContractConfigResponse struct {
	Owner                     string                  `json:"owner"`
	TicketToken               string                  `json:"ticket_token"`
	CoreDenom                 string                  `json:"core_denom"`
	ValidatorAddress          string                  `json:"validator_address"`
	TotalTickets              wasmclient.Uint128      `json:"total_tickets"`
	MaxTicketsPerUser         wasmclient.Uint128      `json:"max_tickets_per_user"`
	TicketPrice               wasmclient.Uint128      `json:"ticket_price"`
	DrawState                 DrawState               `json:"draw_state"`
	Winner                    optional.Option[string] `json:"winner"`
	UndelegationDoneTimestamp optional.Option[uint64] `json:"undelegation_done_timestamp"`
	AccumulatedRewards        wasmclient.Uint128      `json:"accumulated_rewards"`
	BonusRewards              wasmclient.Uint128      `json:"bonus_rewards"`
}
