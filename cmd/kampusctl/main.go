// kampusctl is a small console client over the data-sync core. It wires the
// store, the API client and the state slices exactly the way an embedding
// frontend would, and runs one command against the backend: the in-process
// mock by default, a real server when MOCK_API=false.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/config"
	"kampusgo.dev/kampussosyal/internal/mockapi"
	"kampusgo.dev/kampussosyal/internal/state"
	"kampusgo.dev/kampussosyal/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	backend, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("failed to open store %q: %v", cfg.StorePath, err)
	}
	defer backend.Close()

	session := store.NewSession(backend)

	var transport http.RoundTripper
	if cfg.MockMode {
		router := mockapi.New(mockapi.Options{
			Store:     store.New(backend),
			Session:   session,
			JWTSecret: cfg.JWTSecret,
			JWTTTL:    cfg.JWTTTL,
			Seed:      true,
		})
		transport = router.Transport()
	}

	client := api.New(api.Options{
		BaseURL:   cfg.APIBaseURL,
		Session:   session,
		Transport: transport,
		MockMode:  cfg.MockMode,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "oturum sonlandı, lütfen tekrar giriş yapın")
		},
	})

	notify := state.LogNotifier{}
	users := state.NewUserState(client, notify)
	forums := state.NewForumState(client, notify)
	polls := state.NewPollState(client, notify)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, users, forums, polls); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, users *state.UserState, forums *state.ForumState, polls *state.PollState) error {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("kullanım: kampusctl login <email> <şifre>")
		}
		if err := users.Login(ctx, api.LoginRequest{Email: args[1], Password: args[2]}); err != nil {
			return err
		}
		user := users.Current()
		fmt.Printf("giriş yapıldı: %s (%s)\n", user.Username, user.Email)
		return nil

	case "register":
		if len(args) != 4 {
			return fmt.Errorf("kullanım: kampusctl register <kullanıcı adı> <email> <şifre>")
		}
		req := api.RegisterRequest{Username: args[1], Email: args[2], Password: args[3]}
		if err := users.Register(ctx, req); err != nil {
			return err
		}
		fmt.Printf("kayıt tamamlandı: %s\n", users.Current().Username)
		return nil

	case "whoami":
		if err := users.FetchMe(ctx); err != nil {
			return err
		}
		user := users.Current()
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
		return nil

	case "forums":
		if err := forums.Fetch(ctx, api.ForumFilter{}); err != nil {
			return err
		}
		for _, f := range forums.Items() {
			fmt.Printf("%s  %-40s  +%d/-%d  (%s)\n",
				f.ForumID, f.Header, f.LikeCount, f.DislikeCount, f.Creator.Username)
		}
		if p := forums.Pagination(); p != nil {
			fmt.Printf("sayfa %d/%d, toplam %d\n", p.Page, p.TotalPages, p.Total)
		}
		return nil

	case "open-forum":
		if len(args) < 2 {
			return fmt.Errorf("kullanım: kampusctl open-forum <başlık> [açıklama]")
		}
		req := api.CreateForumRequest{Header: args[1]}
		if len(args) > 2 {
			req.Description = args[2]
		}
		forum, err := forums.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("forum açıldı: %s (%s)\n", forum.Header, forum.ForumID)
		return nil

	case "polls":
		if err := polls.Fetch(ctx, api.PollFilter{}); err != nil {
			return err
		}
		for _, p := range polls.Items() {
			fmt.Printf("%s  %s\n", p.PollID, p.Header)
			for _, opt := range p.Options {
				fmt.Printf("    [%s] %s (%d oy)\n", opt.OptionID, opt.Label, opt.VoteCount)
			}
		}
		return nil

	case "vote":
		if len(args) != 3 {
			return fmt.Errorf("kullanım: kampusctl vote <anket id> <seçenek id>")
		}
		return polls.Vote(ctx, args[1], args[2])

	case "logout":
		users.Logout()
		fmt.Println("oturum kapatıldı")
		return nil

	default:
		usage()
		return fmt.Errorf("bilinmeyen komut: %s", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `kampusctl <komut>

komutlar:
  register <kullanıcı adı> <email> <şifre>
  login <email> <şifre>
  whoami
  logout
  forums
  open-forum <başlık> [açıklama]
  polls
  vote <anket id> <seçenek id>`)
}
