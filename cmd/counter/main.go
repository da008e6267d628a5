// Command counter is a terminal client for a sushi room.
//
// It joins (or creates) a room, polls it in the background, and turns key
// presses into counter taps:
//
//	+ or enter  eat a piece
//	-           undo a piece
//	f           mark yourself done
//	q           quit
//
// When the whole room finishes it prints the final ranking. Run with -history
// to list past rooms from the archive instead.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NachoLave/SushiLibre/internal/client"
	commonuuid "github.com/NachoLave/SushiLibre/internal/common/uuid"
	"github.com/NachoLave/SushiLibre/internal/config"
	"github.com/NachoLave/SushiLibre/internal/models"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "room server address")
	roomID := flag.String("room", "", "room code to join; creates a new room when empty")
	name := flag.String("name", "", "your display name")
	history := flag.Bool("history", false, "list finished rooms and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	apiClient, err := client.New(&client.Config{BaseURL: *addr})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create client")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *history {
		printHistory(ctx, apiClient)
		return
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: counter -name <you> [-room CODE] [-addr URL] [-history]")
		os.Exit(2)
	}

	userID, err := deviceID()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load device id")
	}

	room, err := enterRoom(ctx, apiClient, *roomID, userID, *name)
	if err != nil {
		// A join can bounce off a room that already closed; show its archived
		// result instead of a bare error.
		if (client.IsNotFound(err) || client.IsConflict(err)) && printArchived(ctx, apiClient, *roomID) {
			return
		}
		log.Fatal().Err(err).Msg("failed to enter room")
	}
	fmt.Printf("room %s — share this code with the table\n", room.ID)

	session, err := client.NewSession(&client.SessionConfig{
		Client: apiClient,
		RoomID: room.ID,
		UserID: userID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}

	finished := make(chan *models.Room, 1)
	poller, err := client.NewPoller(&client.PollerConfig{
		Session:  session,
		Interval: config.Load().PollInterval,
		Logger:   log.Logger,
		OnUpdate: func(r *models.Room) {
			render(r, userID)
			if r.Finalizado {
				select {
				case finished <- r:
				default:
				}
				cancel()
			}
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create poller")
	}

	go func() {
		if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("room not loadable")
		}
	}()

	go readKeys(ctx, cancel, session)

	<-ctx.Done()

	select {
	case r := <-finished:
		printRanking(r, userID)
	default:
	}
}

// enterRoom joins the given room, or creates a fresh one when no code was passed
func enterRoom(ctx context.Context, c *client.Client, roomID, userID, name string) (*models.Room, error) {
	if roomID == "" {
		return c.CreateRoom(ctx, name, userID)
	}
	return c.JoinRoom(ctx, roomID, userID, name)
}

// readKeys turns stdin lines into session mutations. Request failures are left
// to the session's implicit retry; a tap never blocks on the previous one failing.
func readKeys(ctx context.Context, cancel context.CancelFunc, session *client.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		var room *models.Room
		var err error
		switch strings.TrimSpace(scanner.Text()) {
		case "", "+":
			room, err = session.IncrementPieces(ctx)
		case "-":
			room, err = session.DecrementPieces(ctx)
		case "f":
			room, err = session.FinishSelf(ctx)
		case "q":
			cancel()
			return
		default:
			continue
		}

		if err != nil {
			log.Warn().Err(err).Msg("tap not confirmed yet")
		}
		if room != nil {
			render(room, session.UserID())
		}
	}
	cancel()
}

func render(room *models.Room, userID string) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s]", room.ID)
	for _, p := range room.Participantes {
		marker := " "
		if p.ID == userID {
			marker = "*"
		}
		done := ""
		if p.Finalizado {
			done = " ✓"
		}
		fmt.Fprintf(&b, "  %s%s: %d%s", marker, p.Nombre, p.Piezas, done)
	}
	fmt.Println(b.String())
}

// printArchived looks the room up in the finished-room archive and prints its
// final ranking. Returns false when the archive has no record either.
func printArchived(ctx context.Context, c *client.Client, roomID string) bool {
	record, err := c.FinishedRoom(ctx, roomID)
	if err != nil {
		return false
	}

	fmt.Printf("room %s finished on %s:\n", record.RoomID, record.Fecha)
	for i, p := range models.RankingFromRecord(record.Participantes) {
		fmt.Printf("%d. %s: %d piezas\n", i+1, p.Nombre, p.Piezas)
	}
	return true
}

// printHistory lists the archived rooms, most recent first, one line per room
// with its winner.
func printHistory(ctx context.Context, c *client.Client) {
	records, err := c.FinishedRooms(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to fetch history")
	}

	if len(records) == 0 {
		fmt.Println("no finished rooms yet")
		return
	}

	for _, r := range records {
		ranked := models.RankingFromRecord(r.Participantes)
		if len(ranked) == 0 {
			fmt.Printf("%s  %s  (empty room)\n", r.Fecha, r.RoomID)
			continue
		}
		fmt.Printf("%s  %s  %s con %d piezas\n", r.Fecha, r.RoomID, ranked[0].Nombre, ranked[0].Piezas)
	}
}

func printRanking(room *models.Room, userID string) {
	fmt.Println("\nfinal ranking:")
	for i, p := range models.Ranking(room.Participantes) {
		you := ""
		if p.ID == userID {
			you = " (you)"
		}
		fmt.Printf("%d. %s — %d piezas%s\n", i+1, p.Nombre, p.Piezas, you)
	}
}

// deviceID returns the stable per-device identifier, creating it on first run
func deviceID() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".sushilibre")
	path := filepath.Join(dir, "device-id")

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	id := commonuuid.New().NewUUID()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}

	return id, nil
}
