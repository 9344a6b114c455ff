package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the challenge pool CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("cp %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: deposit, transfer, balance, payouts, create, join, settle, show, (l)ist, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, ping, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "ping":
			if err := a.api.Ping(ctx); err != nil {
				log.Println(err.Error())
			} else {
				fmt.Println("OK")
			}
		case "deposit":
			a.deposit(ctx)
		case "transfer":
			a.transfer(ctx)
		case "balance":
			a.balance(ctx)
		case "payouts":
			a.payouts(ctx)
		case "create":
			a.createChallenge(ctx)
		case "join":
			a.joinChallenge(ctx)
		case "settle":
			a.settleChallenge(ctx)
		case "show":
			a.showChallenge(ctx)
		case "l", "list":
			a.listChallenges(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
