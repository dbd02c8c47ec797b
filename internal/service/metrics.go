package service

import "github.com/prometheus/client_golang/prometheus"

// 穿搭推荐各结局的计数：ok / degraded / refused / upstream_error
var stylistChats = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "gentry",
		Name:      "stylist_chats_total",
		Help:      "Outfit recommendation chats by outcome",
	}, []string{"outcome"},
)

func init() { prometheus.MustRegister(stylistChats) }
