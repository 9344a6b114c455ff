package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) deposit(ctx context.Context) {
	amount, err := GetAmount(a.reader, "Enter amount to deposit", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	balance, err := a.api.Deposit(ctx, amount)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Deposited %d, balance is now %d\n", amount, balance)
}

func (a *App) transfer(ctx context.Context) {
	to, err := getSimpleText(a.reader, "Enter recipient username", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	amount, err := GetAmount(a.reader, "Enter amount to send", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	balance, err := a.api.Transfer(ctx, to, amount)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Sent %d to %s, balance is now %d\n", amount, to, balance)
}

func (a *App) balance(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username (empty for your own balance)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	balance, err := a.api.GetBalance(ctx, username)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if username == "" {
		fmt.Printf("Balance: %d\n", balance)
	} else {
		fmt.Printf("Balance of %s: %d\n", username, balance)
	}
}

func (a *App) payouts(ctx context.Context) {
	list, err := a.api.ListPayouts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(list) == 0 {
		fmt.Println("No payouts yet")
		return
	}
	for _, p := range list {
		line := fmt.Sprintf("%s  %s  %d", p.CreatedAt.Format("2006-01-02 15:04:05"), p.Kind, p.Amount)
		if p.ChallengeID != 0 {
			line += fmt.Sprintf("  (challenge %d)", p.ChallengeID)
		}
		fmt.Println(line)
	}
}
