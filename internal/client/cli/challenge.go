package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) createChallenge(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter challenge name", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fee, err := GetAmount(a.reader, "Enter entry fee", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	startStr, err := getSimpleText(a.reader, "Enter start time as yyyy-mm-dd hh:mm (empty = now)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	start := time.Now()
	if startStr != "" {
		if start, err = time.ParseInLocation(timeLayout, startStr, time.Local); err != nil {
			log.Println(err.Error())
			return
		}
	}

	endStr, err := getSimpleText(a.reader, "Enter end time as yyyy-mm-dd hh:mm", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	end, err := time.ParseInLocation(timeLayout, endStr, time.Local)
	if err != nil {
		log.Println(err.Error())
		return
	}

	whitelist, err := GetUsernameList(a.reader, "Enter whitelist usernames, comma separated (empty = open to all)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	deposit, err := GetAmount(a.reader, "Enter attached deposit (0 to pay the fee from your balance)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	ch, err := a.api.CreateChallenge(ctx, models.ChallengeDraft{
		Name:            name,
		EntryFee:        fee,
		StartTime:       start,
		EndTime:         end,
		Whitelist:       whitelist,
		AttachedDeposit: deposit,
	})
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Created challenge %d (%s), pool %d\n", ch.ID, ch.Name, ch.Pool)
}

func (a *App) joinChallenge(ctx context.Context) {
	id, err := GetID(a.reader, "Enter challenge id", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := a.api.JoinChallenge(ctx, id); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Joined challenge %d\n", id)
}

func (a *App) settleChallenge(ctx context.Context) {
	id, err := GetID(a.reader, "Enter challenge id", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	winners, err := GetUsernameList(a.reader, "Enter winner usernames, comma separated", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	ch, err := a.api.SettleChallenge(ctx, id, winners)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Settled challenge %d, pool %d paid to %d winner(s)\n", ch.ID, ch.Pool, len(ch.Winners))
}

func (a *App) showChallenge(ctx context.Context) {
	id, err := GetID(a.reader, "Enter challenge id", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	ch, err := a.api.GetChallenge(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}
	printChallenge(ch)
}

func (a *App) listChallenges(ctx context.Context) {
	list, err := a.api.ListChallenges(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(list) == 0 {
		fmt.Println("No challenges yet")
		return
	}
	for _, ch := range list {
		fmt.Printf("%d  %-20s  fee=%d  pool=%d  %s  ends %s\n",
			ch.ID, ch.Name, ch.EntryFee, ch.Pool, ch.Status, ch.EndTime.Format(timeLayout))
	}
}

func printChallenge(ch *models.Challenge) {
	fmt.Printf("Challenge %d: %s\n", ch.ID, ch.Name)
	fmt.Printf("  status:    %s\n", ch.Status)
	fmt.Printf("  entry fee: %d\n", ch.EntryFee)
	fmt.Printf("  pool:      %d\n", ch.Pool)
	fmt.Printf("  starts:    %s\n", ch.StartTime.Format(timeLayout))
	fmt.Printf("  ends:      %s\n", ch.EndTime.Format(timeLayout))
	if ch.SettledAt != nil {
		fmt.Printf("  settled:   %s\n", ch.SettledAt.Format(timeLayout))
	}
	if len(ch.Whitelist) > 0 {
		fmt.Printf("  whitelist: %s\n", strings.Join(ch.Whitelist, ", "))
	}
	if len(ch.Participants) > 0 {
		fmt.Printf("  joined:    %s\n", strings.Join(ch.Participants, ", "))
	}
	for _, w := range ch.Winners {
		fmt.Printf("  winner:    %s won %d\n", w.Username, w.Share)
	}
}
