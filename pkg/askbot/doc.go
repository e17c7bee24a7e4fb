// Package askbot embeds the askbot question answering engine in a Go program.
//
// The client runs fully in process: it loads the intent data (the bundled set by default),
// converts units locally and looks up encyclopedia summaries over HTTP, optionally through a
// Redis summary cache.
//
//	bot, err := askbot.New(ctx,
//	    askbot.WithBotIdentity("helper", "Jane Doe", "jane@example.com", "https://example.com/issues"),
//	    askbot.WithRedisCache("localhost:6379", "", 24*time.Hour),
//	)
//	if err != nil {
//	    return err
//	}
//	defer bot.Close()
//
//	ans, _ := bot.Ask(ctx, "convert 10 km to miles")
//	fmt.Println(ans.Text) // 10 kilometers(km) is equal to 6.21371 miles(mi).
package askbot
