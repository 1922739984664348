package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dailyweather/aggregate"
	"dailyweather/cache"
	"dailyweather/datasource"
	"dailyweather/logging"
	"dailyweather/metrics"
	"dailyweather/models"
	"dailyweather/session"
	"dailyweather/theme"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	// Parse command line arguments
	city := flag.String("city", "", "City to fetch weather for (defaults to the configured city)")
	lat := flag.Float64("lat", 0, "Latitude for a coordinate lookup")
	lon := flag.Float64("lon", 0, "Longitude for a coordinate lookup")
	byCoords := flag.Bool("coords", false, "Look up by -lat/-lon instead of city name")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	darkMode := flag.Bool("dark", false, "Use the dark theme")
	accessibility := flag.Bool("accessibility", false, "Use the high-contrast theme")
	watch := flag.Bool("watch", false, "Keep running and report theme changes on the hour")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := logging.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	// Load configuration, falling back to defaults when the file is absent
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		logging.Warnw("config file not loaded, using defaults", "file", *configFile, "error", err)
		config = datasource.DefaultConfig()
	}
	if config.OpenWeatherMap.APIKey == "" {
		logging.Fatalf("No OpenWeatherMap API key provided (config file or OPENWEATHER_API_KEY)")
	}

	owmProvider := datasource.NewOpenWeatherMapProvider(config.OpenWeatherMap.APIKey)

	var weather datasource.WeatherProvider = owmProvider
	var forecastSrc datasource.ForecastSource = owmProvider
	if *enableRateLimiting {
		// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
		limited := datasource.NewRateLimitedProvider(owmProvider, 1.0, 1.0, 5)
		weather = limited
		forecastSrc = limited
	}
	if config.CacheMinutes > 0 {
		cached := cache.NewCachedProvider(weather, forecastSrc, time.Duration(config.CacheMinutes)*time.Minute)
		weather = cached
		forecastSrc = cached
	}

	sess := session.New(weather, forecastSrc)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case *byCoords:
		err = sess.Locate(ctx, *lat, *lon)
	case *city != "":
		err = sess.Search(ctx, *city)
	default:
		err = sess.Search(ctx, config.DefaultCity)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	snapshot, _ := sess.Current.Value()
	var forecast *models.ForecastData
	if f, ok := sess.Forecast.Value(); ok {
		forecast = &f
	}

	prefs := theme.Preferences{DarkMode: *darkMode, Accessibility: *accessibility}
	now := time.Now()
	render(snapshot, forecast, now, prefs)

	if *watch {
		watchTheme(prefs)
	}
}

// render prints the full dashboard: current conditions, the forecast
// windows and every derived metric.
func render(snapshot models.WeatherSnapshot, forecast *models.ForecastData, now time.Time, prefs theme.Preferences) {
	t := theme.For(now, prefs)

	fmt.Printf("%s  [theme: %s]\n", snapshot.Location(), t.Mode)
	fmt.Printf("%.0f° (%s)  H:%d° L:%d°  icon:%s\n",
		snapshot.Temperature,
		snapshot.Description,
		models.DisplayMaxTemp(snapshot, forecast),
		models.DisplayMinTemp(snapshot, forecast),
		models.MapIcon(snapshot.Icon))

	for _, item := range metrics.InfoItems(snapshot) {
		fmt.Printf("  %-10s %s\n", item.Key, item.Value)
	}

	sun := metrics.SunTimesFor(snapshot, now.Location())
	moon := metrics.MoonInfoFor(snapshot, now)
	fmt.Printf("sunrise %s  sunset %s  moonrise %s  moonset %s  phase %s\n",
		sun.Sunrise, sun.Sunset, moon.Moonrise, moon.Moonset, moon.Phase)

	uv := metrics.EstimateUV(snapshot, now)
	fmt.Printf("UV %.1f (%s) %s  trend:%s\n", uv.Index, uv.Band, uv.DescriptionKey, uv.Trend)

	hum := metrics.AssessHumidity(snapshot.Humidity)
	fmt.Printf("Humidity %d%% (%s) %s  trend:%s\n", hum.Percent, hum.Band, hum.DescriptionKey, hum.Trend)

	air := metrics.EstimateAirQuality(snapshot)
	fmt.Printf("Air quality %d (%s) %s\n", air.Index, air.Band, air.DescriptionKey)

	for _, a := range metrics.AssessActivities(snapshot, forecast, now) {
		fmt.Printf("%-9s %s (%s)", a.Activity, a.Status, a.DescriptionKey)
		for _, slot := range a.Slots {
			fmt.Printf("  %s:%s", slot.Label, slot.Status)
		}
		fmt.Println()
	}

	if forecast == nil {
		return
	}

	fmt.Println("Next hours:")
	for _, e := range aggregate.HourlyStrip(forecast.Entries, now) {
		fmt.Printf("  %s  %.0f°  %s\n", e.Timestamp.Format("15:04"), e.Temperature, e.Description)
	}

	fmt.Println("Precipitation:")
	for _, p := range aggregate.PrecipTimeline(forecast.Entries, now) {
		fmt.Printf("  %-5s %d%%\n", p.Label, p.Percent)
	}

	fmt.Println("Daily:")
	for _, d := range aggregate.GroupByDay(forecast.Entries) {
		fmt.Printf("  %s  %d°/%d°  %d%%  %s\n", d.Date, d.MinTemp, d.MaxTemp, d.Humidity, models.MapIcon(d.Icon))
	}
}

// watchTheme blocks, reporting theme transitions until interrupted.
func watchTheme(prefs theme.Preferences) {
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	watcher := theme.NewWatcher(prefs)
	stop := watcher.Start(context.Background())
	defer stop()

	for {
		select {
		case t := <-watcher.OutputChannel():
			fmt.Printf("theme changed: %s (%s -> %s)\n", t.Mode, t.GradientStart, t.GradientEnd)
		case sig := <-shutdownChan:
			fmt.Printf("Shutting down due to %s signal\n", sig)
			return
		}
	}
}
