// meta/meta.go
package meta

// STARTING_ARMIES is the reinforcement pool every player starts with.
const STARTING_ARMIES = 50

// MAX_ROUNDS caps a game; a game reaching it ends in a draw.
const MAX_ROUNDS = 300

// MAX_ISSUE_CALLS bounds how often a strategy is asked for an order in one round.
const MAX_ISSUE_CALLS = 1000

// DECK_COPIES is the number of copies of each card type in a new deck.
const DECK_COPIES = 5
