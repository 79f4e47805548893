package registry

// Default returns the built-in registry.
func Default() *Registry {
	return New(defaultUseCases, defaultProjects)
}

var defaultUseCases = []UseCaseEntry{
	{Identifier: "pro-baseball-ticketing", Title: "Pro Baseball Ticketing", Template: "ticketing"},
	{Identifier: "pro-football-ticketing", Title: "Pro Football Ticketing", Template: "ticketing"},
	{Identifier: "pro-basketball-ticketing", Title: "Pro Basketball Ticketing", Template: "ticketing"},
	{Identifier: "semiconductor-manufacturing", Title: "Semiconductor Manufacturing", Template: "manufacturing"},
	{Identifier: "semiconductor-design-process", Title: "Semiconductor Design Process", Template: "design"},
	{Identifier: "wafer-fabrication-process", Title: "Wafer Fabrication Process", Template: "batch"},
	{Identifier: "chip-atp-process", Title: "Chip ATP Process", Template: "testing"},
	{Identifier: "battery-electric-bus-production", Title: "Battery Electric Bus Production", Template: "batch"},
	{Identifier: "lithium-battery-monitoring", Title: "Lithium Battery Monitoring", Template: "batch"},
	{Identifier: "humanoid-robot-production", Title: "Humanoid Robot Production", Template: "batch"},
	{Identifier: "robotics-oem", Title: "Robotics OEM", Template: "catalog"},
	{Identifier: "robotics-data-sharing", Title: "Robotics Data Sharing", Template: "data"},
	{Identifier: "robot-deployment-planing-system", Title: "Robot Deployment Planning System", Template: "planning"},
	{Identifier: "robot-supply-chain-network", Title: "Robot Supply Chain Network", Template: "catalog"},
	{Identifier: "robot-maintainance-automation", Title: "Robot Maintenance Automation", Template: "maintenance"},
	{Identifier: "home-battery-storage", Title: "Home Battery Storage", Template: "energy"},
	{Identifier: "aircraft-assembly-process", Title: "Aircraft Assembly Process", Template: "assembly"},
	{Identifier: "tokenized-artwork-exchange", Title: "Tokenized Artwork Exchange", Template: "artwork"},
	{Identifier: "sports-player-ip-mgmt", Title: "Sports Player IP Management", Template: "ip"},
	{Identifier: "tokenized-sports-club", Title: "Tokenized Sports Club", Template: "club"},
	{Identifier: "onchain-kyb", Title: "Onchain KYB", Template: "kyb"},
	{Identifier: "onchain-kyt", Title: "Onchain KYT", Template: "kyt"},
	{Identifier: "onchain-obs", Title: "Onchain OBS", Template: "obs"},
	{Identifier: "onchain-kya", Title: "Onchain KYA", Template: "kya"},
}

var defaultProjects = []ContractProjectSpec{
	{
		Identifier:      "pro-football-ticketing",
		Port:            3004,
		WriteOperations: []string{"create-game", "purchase-ticket", "use-ticket", "transfer-ticket"},
		ReadOperations:  []string{"get-game-info", "get-ticket-info"},
	},
	{
		Identifier:      "pro-basketball-ticketing",
		Port:            3005,
		WriteOperations: []string{"create-game", "purchase-ticket", "use-ticket", "transfer-ticket"},
		ReadOperations:  []string{"get-game-info", "get-ticket-info"},
	},
	{
		Identifier:      "semiconductor-manufacturing",
		Port:            3006,
		WriteOperations: []string{"register-manufacturer", "start-chip-production", "update-production-stage", "complete-production", "transfer-chip"},
		ReadOperations:  []string{"get-chip-info", "get-manufacturer-chips"},
	},
	{
		Identifier:      "semiconductor-design-process",
		Port:            3007,
		WriteOperations: []string{"register-designer", "start-design", "update-milestone", "complete-design"},
		ReadOperations:  []string{"get-design-info", "get-designer-designs"},
	},
	{
		Identifier:      "wafer-fabrication-process",
		Port:            3008,
		WriteOperations: []string{"start-wafer-batch", "update-process-step", "complete-batch"},
		ReadOperations:  []string{"get-batch-info"},
	},
	{
		Identifier:      "chip-atp-process",
		Port:            3009,
		WriteOperations: []string{"start-test-process", "record-test-result", "complete-testing"},
		ReadOperations:  []string{"get-test-info"},
	},
	{
		Identifier:      "battery-electric-bus-production",
		Port:            3010,
		WriteOperations: []string{"start-bus-assembly", "update-assembly-stage", "complete-bus"},
		ReadOperations:  []string{"get-bus-info"},
	},
	{
		Identifier:      "lithium-battery-monitoring",
		Port:            3011,
		WriteOperations: []string{"register-battery-line", "start-cell-production", "record-quality-check", "complete-cell"},
		ReadOperations:  []string{"get-cell-info", "get-line-stats"},
	},
	{
		Identifier:      "humanoid-robot-production",
		Port:            3012,
		WriteOperations: []string{"start-robot-batch", "update-assembly-stage", "quality-check", "complete-batch"},
		ReadOperations:  []string{"get-batch-info"},
	},
	{
		Identifier:      "robotics-oem",
		Port:            3013,
		WriteOperations: []string{"register-component", "create-order", "fulfill-order"},
		ReadOperations:  []string{"get-component-info", "get-order-info"},
	},
	{
		Identifier:      "robotics-data-sharing",
		Port:            3014,
		WriteOperations: []string{"register-robot", "share-process-data", "grant-access", "revoke-access"},
		ReadOperations:  []string{"get-robot-data", "check-access"},
	},
	{
		Identifier:      "robot-deployment-planing-system",
		Port:            3015,
		WriteOperations: []string{"create-deployment-plan", "assign-robot", "update-status", "complete-deployment"},
		ReadOperations:  []string{"get-plan-info", "get-robot-assignment"},
	},
	{
		Identifier:      "robot-supply-chain-network",
		Port:            3016,
		WriteOperations: []string{"register-supplier", "create-part", "create-supply-order", "fulfill-order"},
		ReadOperations:  []string{"get-part-info", "get-order-info"},
	},
	{
		Identifier:      "robot-maintainance-automation",
		Port:            3017,
		WriteOperations: []string{"schedule-maintenance", "record-maintenance", "update-status"},
		ReadOperations:  []string{"get-maintenance-info", "get-robot-history"},
	},
	{
		Identifier:      "home-battery-storage",
		Port:            3018,
		WriteOperations: []string{"register-battery", "record-charge-cycle", "update-capacity", "get-battery-health"},
		ReadOperations:  []string{"get-battery-info", "get-cycle-history"},
	},
	{
		Identifier:      "aircraft-assembly-process",
		Port:            3019,
		WriteOperations: []string{"start-aircraft-assembly", "update-assembly-stage", "install-component", "complete-aircraft"},
		ReadOperations:  []string{"get-aircraft-info", "get-assembly-progress"},
	},
	{
		Identifier:      "tokenized-artwork-exchange",
		Port:            3020,
		WriteOperations: []string{"register-artwork", "create-listing", "purchase-artwork", "transfer-artwork"},
		ReadOperations:  []string{"get-artwork-info", "get-listing-info"},
	},
	{
		Identifier:      "sports-player-ip-mgmt",
		Port:            3021,
		WriteOperations: []string{"register-player-ip", "create-license", "transfer-license", "revoke-license"},
		ReadOperations:  []string{"get-ip-info", "get-license-info"},
	},
	{
		Identifier:      "tokenized-sports-club",
		Port:            3022,
		WriteOperations: []string{"initialize-club", "mint-tokens", "transfer-tokens", "create-proposal", "vote-on-proposal"},
		ReadOperations:  []string{"get-club-info", "get-token-balance", "get-proposal-info"},
	},
	{
		Identifier:      "onchain-kyb",
		Port:            3023,
		WriteOperations: []string{"submit-business-verification", "approve-verification", "reject-verification", "update-status"},
		ReadOperations:  []string{"get-verification-status", "is-business-verified"},
	},
	{
		Identifier:      "onchain-kyt",
		Port:            3024,
		WriteOperations: []string{"register-transaction", "flag-transaction", "update-risk-score", "whitelist-address"},
		ReadOperations:  []string{"get-transaction-info", "get-risk-score", "is-whitelisted"},
	},
	{
		Identifier:      "onchain-obs",
		Port:            3025,
		WriteOperations: []string{"add-sanctioned-address", "remove-sanctioned-address", "check-sanction"},
		ReadOperations:  []string{"is-sanctioned", "get-sanction-info"},
	},
	{
		Identifier:      "onchain-kya",
		Port:            3026,
		WriteOperations: []string{"register-address", "verify-address", "update-verification", "revoke-verification"},
		ReadOperations:  []string{"get-address-info", "is-address-verified"},
	},
}
