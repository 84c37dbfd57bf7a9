package service

import (
	"ProjectRoameo/pkg/redis"
	"ProjectRoameo/pkg/scheduler"
	"ProjectRoameo/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AssistantService interface {
	FAQ() FAQDomain
	Composer() ComposerDomain
	Sessions() SessionDomain
}

type assistantService struct {
	faq      FAQDomain
	composer ComposerDomain
	sessions SessionDomain
}

func New(kv redis.IRedis, u utils.IUtils, sched scheduler.Scheduler, delays scheduler.DelayProvider, log *logrus.Logger) AssistantService {
	faq := newFAQDomain(kv, log)
	composer := newComposerDomain(faq, u, log)
	sessions := newSessionDomain(composer, u, sched, delays, log)

	return &assistantService{
		faq:      faq,
		composer: composer,
		sessions: sessions,
	}
}

func (s *assistantService) FAQ() FAQDomain {
	return s.faq
}

func (s *assistantService) Composer() ComposerDomain {
	return s.composer
}

func (s *assistantService) Sessions() SessionDomain {
	return s.sessions
}
