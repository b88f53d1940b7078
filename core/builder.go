package core

import (
	"net"

	"github.com/genemuffin/genemuffind/api"
	"github.com/genemuffin/genemuffind/cart"
	"github.com/genemuffin/genemuffind/checkout"
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/notifications"
	"github.com/genemuffin/genemuffind/profiles"
	"github.com/genemuffin/genemuffind/repo"
	"github.com/genemuffin/genemuffind/wallet"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("CORE")

// NewNode constructs and returns a GeneMuffinNode using the given cfg.
func NewNode(cfg *repo.Config) (*GeneMuffinNode, error) {
	gmRepo, err := repo.NewRepo(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	repo.SetupLogging(cfg.LogDir, cfg.LogLevel)

	bus := events.NewBus()

	cartStore, err := cart.NewStore(bus, gmRepo.DB())
	if err != nil {
		return nil, err
	}

	machine, err := checkout.NewMachine(cartStore, bus, gmRepo.DB())
	if err != nil {
		return nil, err
	}

	sim := wallet.NewSimulator(bus)
	sim.OnConnectionChanged(machine.SetWalletConnected)

	profileOpts := []profiles.Option{}
	if cfg.ProfileAPIURL != "" {
		profileOpts = append(profileOpts, profiles.APIURL(cfg.ProfileAPIURL))
	}
	if cfg.UseTestData {
		profileOpts = append(profileOpts, profiles.RequestBudget(0))
	}
	profileService := profiles.NewService(gmRepo.DB(), profileOpts...)

	node := &GeneMuffinNode{
		repo:      gmRepo,
		eventBus:  bus,
		cartStore: cartStore,
		checkout:  machine,
		wallet:    sim,
		profiles:  profileService,
		testData:  cfg.UseTestData,
		shutdown:  make(chan struct{}),
	}

	node.gateway, err = node.newHTTPGateway(cfg)
	if err != nil {
		return nil, err
	}

	node.notifier = notifications.NewNotifier(bus, gmRepo.DB(), node.gateway.NotifyWebsockets)

	return node, nil
}

func (n *GeneMuffinNode) newHTTPGateway(cfg *repo.Config) (*api.Gateway, error) {
	listener, err := net.Listen("tcp", cfg.GatewayAddr)
	if err != nil {
		return nil, err
	}

	allowedIPs := make(map[string]bool)
	for _, ip := range cfg.APIAllowedIPs {
		allowedIPs[ip] = true
	}

	config := &api.GatewayConfig{
		Listener:   listener,
		NoCors:     cfg.APINoCors,
		UseSSL:     cfg.UseSSL,
		SSLCert:    cfg.SSLCertFile,
		SSLKey:     cfg.SSLKeyFile,
		Username:   cfg.APIUsername,
		Password:   cfg.APIPassword,
		Cookie:     cfg.APICookie,
		PublicOnly: cfg.APIPublic,
		AllowedIPs: allowedIPs,
	}

	return api.NewGateway(n, config)
}
