package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"zole/internal/bots"
	"zole/internal/engine"
)

const humanSeat = 0

func main() {
	seedFlag := flag.Int64("seed", 0, "random seed, 0 for time-based")
	incentiveFlag := flag.Int("incentive", 0, "large-player win incentive")
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Z", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ole", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Info.Printfln("You are seat %s, playing against two bots", seatName(humanSeat))

	game := engine.NewGame(seed)
	table := map[int]bots.Bot{
		1: bots.NewGreedy(seed + 1),
		2: bots.NewRandom(seed + 2),
	}

	for {
		playRound(game, table, *incentiveFlag)

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another round?").
			WithDefaultValue(true).
			Show()
		if !again {
			return
		}
	}
}

func playRound(game *engine.Game, table map[int]bots.Bot, incentive int) {
	game.Init()
	pterm.DefaultSection.Printfln("Board %d, dealer %s", game.Round.BoardID(), seatName(game.Round.DealerID()))

	for !game.IsOver() {
		current := game.CurrentPlayerID()
		legal := game.LegalActions()

		var action engine.Action
		if current == humanSeat {
			action = promptAction(game, legal)
		} else {
			action = table[current].ChooseAction(game.Round, legal)
			describeBotAction(current, action)
		}
		if _, _, err := game.Step(action); err != nil {
			pterm.Fatal.Printfln("step failed: %v", err)
		}
		if game.Round.IsBiddingOver() && game.Round.PlayCardCount > 0 && game.Round.PlayCardCount%engine.NumPlayers == 0 {
			pterm.Info.Printfln("Trick won by %s", seatName(game.Round.CurrentPlayerID))
		}
	}

	showResult(game, incentive)
}

func promptAction(game *engine.Game, legal []engine.Action) engine.Action {
	round := game.Round

	pterm.Println()
	pterm.DefaultBox.WithTitle("Your hand").Println(handLine(round.Players[humanSeat].Hand))
	if round.IsBiddingOver() && round.PlayCardCount%engine.NumPlayers != 0 {
		lines := make([]string, 0, engine.NumPlayers)
		for _, m := range round.TrickMoves() {
			lines = append(lines, fmt.Sprintf("%s: %s", seatName(m.PlayerID), m.Card))
		}
		pterm.DefaultBox.WithTitle("Current trick").Println(strings.Join(lines, "\n"))
	}
	if large, ok := round.LargePlayerID(); ok {
		pterm.Info.Printfln("Large player: %s", seatName(large))
	}

	options := make([]string, 0, len(legal))
	for _, a := range legal {
		options = append(options, describeAction(a))
	}
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Choose your action").
		Show()
	if err != nil {
		pterm.Fatal.Printfln("input failed: %v", err)
	}
	for i, opt := range options {
		if opt == selected {
			return legal[i]
		}
	}
	return legal[0]
}

func describeAction(a engine.Action) string {
	switch act := a.(type) {
	case engine.Pass:
		return "pass"
	case engine.Take:
		return "take the table"
	case engine.Bury:
		return fmt.Sprintf("bury %s", act.Card)
	case engine.Play:
		return fmt.Sprintf("play %s", act.Card)
	default:
		return "unknown"
	}
}

func describeBotAction(player int, a engine.Action) {
	switch act := a.(type) {
	case engine.Pass:
		pterm.Printfln("%s passes", seatName(player))
	case engine.Take:
		pterm.Printfln("%s takes the table", seatName(player))
	case engine.Bury:
		pterm.Printfln("%s buries a card", seatName(player))
	case engine.Play:
		pterm.Printfln("%s plays %s", seatName(player), act.Card)
	}
}

func showResult(game *engine.Game, incentive int) {
	pterm.Println()
	if large, ok := game.Round.LargePlayerID(); ok {
		pterm.Info.Printfln("Points: large side %d, small side %d",
			game.Round.WonTrickPoints[0], game.Round.WonTrickPoints[1])
		payoffs, err := engine.Payoffs(game, incentive)
		if err != nil {
			pterm.Fatal.Printfln("payoffs: %v", err)
		}
		rows := pterm.TableData{{"Seat", "Role", "Payoff"}}
		for seat, payoff := range payoffs {
			role := "small"
			if seat == large {
				role = "large"
			}
			rows = append(rows, []string{seatName(seat), role, fmt.Sprintf("%+d", payoff)})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	} else {
		pterm.Info.Println("Everyone passed, no payoffs")
	}
}

func handLine(hand []engine.Card) string {
	names := make([]string, 0, len(hand))
	for _, c := range hand {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}

func seatName(seat int) string {
	return [engine.NumPlayers]string{"N", "E", "S"}[seat]
}
