package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/config"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/content"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/repository"
)

// bankVersion tags the question bank written by this seed.
const bankVersion = "v1"

type statement struct {
	text    string
	reverse bool
}

// bank is the built-in Likert question bank: 12 statements per
// category, three of them negatively phrased and reverse-scored.
var bank = map[model.Category][]statement{
	model.CategoryInnovation: {
		{text: "I enjoy imagining products or services that do not exist yet.", reverse: false},
		{text: "I often combine ideas from unrelated fields into something new.", reverse: false},
		{text: "When a process feels outdated, I start redesigning it in my head.", reverse: false},
		{text: "I seek out tools and methods most of my peers have not tried.", reverse: false},
		{text: "Brainstorming sessions energize me more than status meetings.", reverse: false},
		{text: "I prototype rough versions of ideas just to see what happens.", reverse: false},
		{text: "People come to me when they need an unconventional angle.", reverse: false},
		{text: "I question default settings, defaults, and inherited rules.", reverse: false},
		{text: "I keep a running list of ideas I want to explore someday.", reverse: false},
		{text: "I prefer sticking to methods that are already proven to work.", reverse: true},
		{text: "New approaches feel risky to me until someone else validates them.", reverse: true},
		{text: "I find it draining to start things without a clear precedent.", reverse: true},
	},
	model.CategoryExecution: {
		{text: "I break big goals into concrete next actions the same day I set them.", reverse: false},
		{text: "Deadlines I commit to almost always get met.", reverse: false},
		{text: "I finish projects even after the initial excitement wears off.", reverse: false},
		{text: "I track my progress against a plan rather than working by feel.", reverse: false},
		{text: "When scope grows, I cut or renegotiate rather than silently slip.", reverse: false},
		{text: "Colleagues describe me as the person who actually ships.", reverse: false},
		{text: "I close loops: small tasks get done instead of lingering for weeks.", reverse: false},
		{text: "I make decisions quickly enough to keep work moving.", reverse: false},
		{text: "My estimates of how long work will take are usually accurate.", reverse: false},
		{text: "I often leave projects about eighty percent finished.", reverse: true},
		{text: "Planning bores me, so I tend to skip it and improvise.", reverse: true},
		{text: "Small obstacles frequently derail my schedule for days.", reverse: true},
	},
	model.CategoryInfluence: {
		{text: "I can make a complex idea feel obvious in a few sentences.", reverse: false},
		{text: "People often repeat phrases or framings that I introduced.", reverse: false},
		{text: "I enjoy presenting to audiences who start out skeptical.", reverse: false},
		{text: "I adapt my message to each listener without losing its core.", reverse: false},
		{text: "Strangers tend to remember meeting me.", reverse: false},
		{text: "I volunteer to speak for the group when a position needs a voice.", reverse: false},
		{text: "My writing or talks have changed how people around me work.", reverse: false},
		{text: "I build a point of view in public rather than keeping it private.", reverse: false},
		{text: "Negotiations usually end closer to my position than where they began.", reverse: false},
		{text: "I avoid speaking up in rooms with senior or unfamiliar people.", reverse: true},
		{text: "Promoting my own work makes me uncomfortable enough to skip it.", reverse: true},
		{text: "I struggle to hold a group's attention when I talk.", reverse: true},
	},
	model.CategoryCollaboration: {
		{text: "I notice quickly when a teammate is blocked or struggling.", reverse: false},
		{text: "I share credit generously and accurately.", reverse: false},
		{text: "People confide in me about problems before they escalate.", reverse: false},
		{text: "I ask questions that help quieter colleagues enter the discussion.", reverse: false},
		{text: "Handoffs to me and from me rarely drop information.", reverse: false},
		{text: "I adjust my working style to mesh with different personalities.", reverse: false},
		{text: "Disagreements with me stay about the work, not the person.", reverse: false},
		{text: "I invest time in team rituals even when my own plate is full.", reverse: false},
		{text: "I would rather resolve a conflict early than let it simmer.", reverse: false},
		{text: "I do my best work when no one else is involved.", reverse: true},
		{text: "Coordinating with others feels like overhead that slows me down.", reverse: true},
		{text: "I find other people's work styles frustrating to accommodate.", reverse: true},
	},
	model.CategoryResilience: {
		{text: "Setbacks sharpen my focus rather than scatter it.", reverse: false},
		{text: "I recover my motivation within days of a significant failure.", reverse: false},
		{text: "Pressure situations bring out my calmest thinking.", reverse: false},
		{text: "I keep commitments even during personally difficult periods.", reverse: false},
		{text: "Criticism of my work rarely costs me a night's sleep.", reverse: false},
		{text: "I pace myself so I can sustain effort over months, not weeks.", reverse: false},
		{text: "After a rejection, I analyze and retry rather than withdraw.", reverse: false},
		{text: "Uncertainty about the future does not stop me from acting today.", reverse: false},
		{text: "Colleagues lean on my steadiness when plans fall apart.", reverse: false},
		{text: "One harsh piece of feedback can sour my whole week.", reverse: true},
		{text: "When plans change suddenly, I need a long time to regroup.", reverse: true},
		{text: "I give up on goals once they stop being enjoyable.", reverse: true},
	},
}

func buildBank() ([]model.QuestionMetadata, error) {
	questions := make([]model.QuestionMetadata, 0, model.TotalQuestions)
	number := 0
	for _, c := range model.Categories {
		statements := bank[c]
		if len(statements) != model.QuestionsPerCategory {
			return nil, fmt.Errorf("category %s has %d statements, want %d", c, len(statements), model.QuestionsPerCategory)
		}
		for _, st := range statements {
			number++
			questions = append(questions, model.QuestionMetadata{
				ID:              uuid.NewString(),
				QuestionNumber:  number,
				Category:        c,
				Text:            st.text,
				IsReverseScored: st.reverse,
			})
		}
	}
	if len(questions) != model.TotalQuestions {
		return nil, fmt.Errorf("bank has %d questions, want %d", len(questions), model.TotalQuestions)
	}
	return questions, nil
}

func main() {
	cfg := config.Load()

	if err := content.Verify(); err != nil {
		log.Fatalf("Static content tables are broken: %v", err)
	}

	questions, err := buildBank()
	if err != nil {
		log.Fatalf("Question bank is broken: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questionRepo := repository.NewQuestionRepo(client.Database(cfg.MongoDatabase))
	if err := questionRepo.ReplaceActive(ctx, bankVersion, questions); err != nil {
		log.Fatalf("Failed to seed question bank: %v", err)
	}

	fmt.Printf("Seeded question bank %s: %d questions, %d per category\n",
		bankVersion, len(questions), model.QuestionsPerCategory)
}
