package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Clovis5119/overwatch-stats/src/owapi"
	"github.com/Clovis5119/overwatch-stats/src/profile"
)

func main() {
	var dir string
	var tag string
	var platform string
	var region string
	var add bool
	var remove bool
	var logLevel string
	flag.StringVar(&dir, "dir", "owstats_data", "Directory for player data")
	flag.StringVar(&tag, "tag", "", "Battletag in dashed form (e.g. Clovis-1467)")
	flag.StringVar(&platform, "platform", "pc", "Platform: pc, xbl, psn or nintendo-switch")
	flag.StringVar(&region, "region", "us", "Region: us, eu or asia")
	flag.BoolVar(&add, "add", false, "Register the tag before fetching")
	flag.BoolVar(&remove, "remove", false, "Remove the tag and its cached data")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn or error")
	flag.Parse()
	profile.SetLogLevel(logLevel)

	client, err := owapi.NewClientFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	store, err := profile.NewStore(dir, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if tag == "" {
		// no tag: list what we have
		players := store.Players()
		fmt.Printf("Saved profiles: %d\n", len(players))
		for _, t := range players {
			info, _ := store.Player(t)
			line := fmt.Sprintf("%s (%s/%s)", t, info.Platform, info.Region)
			if entry, ok := store.LoadCached(t); ok {
				line += fmt.Sprintf(" fetched %s", entry.FetchedAt().Local().Format(time.RFC3339))
			}
			fmt.Println(line)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if remove {
		if err := store.RemovePlayer(tag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %s\n", tag)
		return
	}

	var stats *owapi.StatsPayload
	if add {
		stats, err = store.AddPlayer(ctx, tag, platform, region)
	} else {
		stats, err = store.GetOrRefresh(ctx, tag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Profile: %s (endorsement %d)\n", stats.Name, stats.Endorsement)
	if entry, ok := store.Cached(tag); ok {
		age := time.Since(entry.FetchedAt()).Round(time.Minute)
		fmt.Printf("Fetched: %s (%s ago)\n", entry.FetchedAt().Local().Format(time.RFC3339), age)
	}
	for _, mode := range []string{owapi.ModeQuickPlay, owapi.ModeCompetitive} {
		m := stats.Mode(mode)
		if m == nil {
			continue
		}
		fmt.Printf("%s: %d heroes, %.0f games on record\n",
			mode, len(m.CareerStats), stats.GamesPlayed(mode, owapi.HeroAll))
		for _, cat := range stats.Categories(mode, owapi.HeroAll) {
			fmt.Printf("  %s: %d stats\n", cat, len(stats.StatKeys(mode, owapi.HeroAll, cat)))
		}
	}
}
