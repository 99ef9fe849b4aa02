package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"holidaze/internal/api"
	"holidaze/internal/booking"
	"holidaze/internal/entities"
	"holidaze/internal/service"
	"holidaze/internal/session"
)

const usage = `usage: holidaze <command> [flags]

browse
  venues                      list venues
  search -q <text>            search venues
  venue -id <id>              venue detail with availability calendar

account
  register -name -email -password [-bio] [-manager]
  login -email -password
  logout
  profile                     show my profile
  update-profile [-bio|-clear-bio] [-avatar-url] [-avatar-alt]
                 [-banner-url] [-banner-alt] [-manager=true|false]
  my-bookings                 list my bookings
  my-venues                   list my venues

venue manager
  create-venue -name -description -price -max-guests [facility/location flags]
  edit-venue -id ...same flags as create-venue
  delete-venue -id <id>

booking
  book -venue <id> -from YYYY-MM-DD -to YYYY-MM-DD -guests <n>
`

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	apiKey := os.Getenv("HOLIDAZE_API_KEY")
	if apiKey == "" {
		log.Fatal("HOLIDAZE_API_KEY not set")
	}

	sessionPath, err := session.DefaultPath()
	if err != nil {
		log.Fatalf("Failed to resolve session path: %v", err)
	}
	sessions := session.NewStore(sessionPath)
	if err := sessions.Load(); err != nil {
		log.Printf("Ignoring unreadable session: %v", err)
	}

	client := api.NewClient(os.Getenv("HOLIDAZE_API_URL"), apiKey, sessions)
	app := &app{
		client:   client,
		sessions: sessions,
		auth:     service.NewAuthService(client, sessions),
		venues:   service.NewVenueService(client, sessions),
		profiles: service.NewProfileService(client, sessions),
	}

	ctx := context.Background()
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

type app struct {
	client   *api.Client
	sessions *session.Store
	auth     *service.AuthService
	venues   *service.VenueService
	profiles *service.ProfileService
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "venues":
		return a.listVenues(ctx)
	case "search":
		return a.search(ctx, args)
	case "venue":
		return a.venueDetail(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.auth.Logout()
	case "profile":
		return a.showProfile(ctx)
	case "update-profile":
		return a.updateProfile(ctx, args)
	case "my-bookings":
		return a.myBookings(ctx)
	case "my-venues":
		return a.myVenues(ctx)
	case "create-venue":
		return a.createVenue(ctx, args)
	case "edit-venue":
		return a.editVenue(ctx, args)
	case "delete-venue":
		return a.deleteVenue(ctx, args)
	case "book":
		return a.book(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) listVenues(ctx context.Context) error {
	venues, err := a.venues.Browse(ctx)
	if err != nil {
		return err
	}
	printVenues(venues)
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "search text")
	fs.Parse(args)
	if *q == "" {
		return fmt.Errorf("search: -q is required")
	}
	venues, err := a.venues.Search(ctx, *q)
	if err != nil {
		return err
	}
	if len(venues) == 0 {
		fmt.Printf("No venues matched %q\n", *q)
		return nil
	}
	printVenues(venues)
	return nil
}

func (a *app) venueDetail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("venue", flag.ExitOnError)
	id := fs.String("id", "", "venue id")
	days := fs.Int("days", 30, "calendar days to show")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("venue: -id is required")
	}
	venue, err := a.venues.Detail(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", venue.Name, venue.Description)
	fmt.Printf("Price: %.2f per night, up to %d guests\n", venue.Price, venue.MaxGuests)
	fmt.Printf("Facilities: wifi=%t parking=%t breakfast=%t pets=%t\n",
		venue.Meta.Wifi, venue.Meta.Parking, venue.Meta.Breakfast, venue.Meta.Pets)
	if loc := venue.Location; loc != nil {
		fmt.Printf("Location: %s, %s %s, %s\n", loc.Address, loc.Zip, loc.City, loc.Country)
	}
	if venue.Owner != nil {
		fmt.Printf("Managed by: %s\n", venue.Owner.Name)
	}

	fmt.Printf("\nAvailability next %d days:\n", *days)
	today := time.Now()
	for i := 0; i < *days; i++ {
		d := today.AddDate(0, 0, i)
		mark := "open"
		if booking.IsDateBlocked(d, venue.Bookings) {
			mark = "booked"
		}
		fmt.Printf("  %s  %s\n", d.Format("2006-01-02"), mark)
	}
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "user name")
	email := fs.String("email", "", "stud.noroff.no email")
	password := fs.String("password", "", "password")
	bio := fs.String("bio", "", "profile bio")
	manager := fs.Bool("manager", false, "register as venue manager")
	fs.Parse(args)

	profile, err := a.auth.Register(ctx, entities.RegisterRequest{
		Name:         *name,
		Email:        *email,
		Password:     *password,
		Bio:          *bio,
		VenueManager: *manager,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s. Log in with: holidaze login -email %s -password ...\n", profile.Name, profile.Email)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	sess, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", sess.User.Name)
	return nil
}

func (a *app) showProfile(ctx context.Context) error {
	profile, err := a.profiles.Current(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", profile.Name, profile.Email)
	if profile.Bio != "" {
		fmt.Println(profile.Bio)
	}
	fmt.Printf("Venue manager: %t\n", profile.VenueManager)
	fmt.Printf("Venues: %d, bookings: %d\n", profile.Count.Venues, profile.Count.Bookings)
	return nil
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ExitOnError)
	bio := fs.String("bio", "", "new bio")
	clearBio := fs.Bool("clear-bio", false, "erase the bio")
	avatarURL := fs.String("avatar-url", "", "avatar image URL")
	avatarAlt := fs.String("avatar-alt", "", "avatar alt text")
	bannerURL := fs.String("banner-url", "", "banner image URL")
	bannerAlt := fs.String("banner-alt", "", "banner alt text")
	manager := fs.Bool("manager", false, "venue manager flag")
	fs.Parse(args)

	changes := service.ProfileChanges{
		Bio:       *bio,
		ClearBio:  *clearBio,
		AvatarURL: *avatarURL,
		AvatarAlt: *avatarAlt,
		BannerURL: *bannerURL,
		BannerAlt: *bannerAlt,
	}
	if visited(fs, "manager") {
		changes.VenueManager = manager
	}

	profile, err := a.profiles.Update(ctx, changes)
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated for %s\n", profile.Name)
	return nil
}

func (a *app) myBookings(ctx context.Context) error {
	bookings, err := a.profiles.Bookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings yet")
		return nil
	}
	for _, b := range bookings {
		venueName := "(venue unavailable)"
		if b.Venue != nil {
			venueName = b.Venue.Name
		}
		fmt.Printf("%s  %s → %s  %d guest(s)  %s\n",
			b.ID, b.DateFrom.Format("2006-01-02"), b.DateTo.Format("2006-01-02"), b.Guests, venueName)
	}
	return nil
}

func (a *app) myVenues(ctx context.Context) error {
	venues, err := a.profiles.Venues(ctx)
	if err != nil {
		return err
	}
	if len(venues) == 0 {
		fmt.Println("No venues yet")
		return nil
	}
	printVenues(venues)
	return nil
}

func (a *app) createVenue(ctx context.Context, args []string) error {
	req, _ := venueFlags("create-venue", args)
	venue, err := a.venues.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Created venue %s (%s)\n", venue.Name, venue.ID)
	return nil
}

func (a *app) editVenue(ctx context.Context, args []string) error {
	req, id := venueFlags("edit-venue", args)
	if id == "" {
		return fmt.Errorf("edit-venue: -id is required")
	}
	venue, err := a.venues.Update(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Printf("Updated venue %s (%s)\n", venue.Name, venue.ID)
	return nil
}

func (a *app) deleteVenue(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-venue", flag.ExitOnError)
	id := fs.String("id", "", "venue id")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("delete-venue: -id is required")
	}
	if err := a.venues.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Venue deleted")
	return nil
}

func (a *app) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	venueID := fs.String("venue", "", "venue id")
	from := fs.String("from", "", "start date YYYY-MM-DD")
	to := fs.String("to", "", "end date YYYY-MM-DD")
	guests := fs.Int("guests", 1, "guest count")
	fs.Parse(args)
	if *venueID == "" {
		return fmt.Errorf("book: -venue is required")
	}

	venue, err := a.venues.Detail(ctx, *venueID)
	if err != nil {
		return err
	}

	candidate := booking.Candidate{Guests: *guests}
	if candidate.DateFrom, err = parseDate(*from); err != nil {
		return err
	}
	if candidate.DateTo, err = parseDate(*to); err != nil {
		return err
	}

	flow := service.NewBookingFlow(a.client, a.sessions)
	flow.OnSuccess(func(b entities.Booking) {
		fmt.Printf("See it under \"holidaze my-bookings\" (booking %s)\n", b.ID)
	})

	result := flow.Submit(ctx, *venue, candidate)
	switch result.Outcome {
	case service.OutcomeBooked:
		fmt.Printf("Booked %s: %s → %s for %d guest(s)\n",
			venue.Name, result.Booking.DateFrom.Format("2006-01-02"),
			result.Booking.DateTo.Format("2006-01-02"), result.Booking.Guests)
		return nil
	case service.OutcomeNotAuthenticated:
		return fmt.Errorf("%s: holidaze login -email ... -password ...", result.Message)
	default:
		return fmt.Errorf("%s", result.Message)
	}
}

func venueFlags(name string, args []string) (entities.VenueRequest, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.String("id", "", "venue id (edit only)")
	venueName := fs.String("name", "", "venue name")
	description := fs.String("description", "", "description")
	price := fs.Float64("price", 0, "nightly price")
	maxGuests := fs.Int("max-guests", 1, "maximum guests")
	wifi := fs.Bool("wifi", false, "wifi available")
	parking := fs.Bool("parking", false, "parking available")
	breakfast := fs.Bool("breakfast", false, "breakfast included")
	pets := fs.Bool("pets", false, "pets allowed")
	mediaURL := fs.String("media-url", "", "image URL")
	mediaAlt := fs.String("media-alt", "", "image alt text")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	zip := fs.String("zip", "", "zip code")
	country := fs.String("country", "", "country")
	fs.Parse(args)

	req := entities.NewVenueRequest(
		*venueName, *description, *price, *maxGuests,
		entities.Meta{Wifi: *wifi, Parking: *parking, Breakfast: *breakfast, Pets: *pets},
		*mediaURL, *mediaAlt, *address, *city, *zip, *country,
	)
	return req, *id
}

func printVenues(venues []entities.Venue) {
	for _, v := range venues {
		city := ""
		if v.Location != nil && v.Location.City != "" {
			city = "  " + v.Location.City
		}
		fmt.Printf("%s  %-30s  %8.2f/night  %d guests%s\n", v.ID, v.Name, v.Price, v.MaxGuests, city)
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

// visited reports whether a flag was set explicitly, so an absent
// -manager flag means "leave it alone" rather than "set false".
func visited(fs *flag.FlagSet, name string) bool {
	seen := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			seen = true
		}
	})
	return seen
}
