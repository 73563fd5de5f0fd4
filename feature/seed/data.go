package seed

import (
	"time"

	"social-network/feature/users"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func str(s string) *string {
	return &s
}

var sampleUsers = []users.User{
	{
		Title: users.TitleMr, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com",
		DateOfBirth: date(1990, time.May, 15), Phone: str("+1234567890"),
		Picture:  "https://randomuser.me/api/portraits/men/1.jpg",
		Location: &users.Location{Street: "123 Main Street", City: "New York", State: "NY", Country: "USA", Timezone: "-5:00"},
	},
	{
		Title: users.TitleMiss, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com",
		DateOfBirth: date(1992, time.August, 20), Phone: str("+1987654321"),
		Picture:  "https://randomuser.me/api/portraits/women/2.jpg",
		Location: &users.Location{Street: "456 Oak Avenue", City: "Los Angeles", State: "CA", Country: "USA", Timezone: "-8:00"},
	},
	{
		Title: users.TitleDr, FirstName: "Marie", LastName: "Dubois", Email: "marie.dubois@example.com",
		DateOfBirth: date(1985, time.March, 10), Phone: str("+33612345678"),
		Picture:  "https://randomuser.me/api/portraits/women/3.jpg",
		Location: &users.Location{Street: "10 Rue de la Paix", City: "Paris", State: "Île-de-France", Country: "France", Timezone: "+1:00"},
	},
	{
		Title: users.TitleMr, FirstName: "Ahmed", LastName: "Hassan", Email: "ahmed.hassan@example.com",
		DateOfBirth: date(1988, time.November, 25), Phone: str("+212612345678"),
		Picture:  "https://randomuser.me/api/portraits/men/4.jpg",
		Location: &users.Location{Street: "25 Boulevard Mohammed V", City: "Rabat", State: "Rabat-Salé-Kénitra", Country: "Morocco", Timezone: "+0:00"},
	},
	{
		Title: users.TitleMiss, FirstName: "Sofia", LastName: "Garcia", Email: "sofia.garcia@example.com",
		DateOfBirth: date(1995, time.July, 5), Phone: str("+34612345678"),
		Picture:  "https://randomuser.me/api/portraits/women/5.jpg",
		Location: &users.Location{Street: "Calle Mayor 15", City: "Madrid", State: "Madrid", Country: "Spain", Timezone: "+1:00"},
	},
}

type postTemplate struct {
	text string
	tags []string
}

var samplePosts = []postTemplate{
	{"Just discovered an amazing new tech stack! Go and Fiber are incredibly fast and easy to use. Highly recommend them for building modern APIs.",
		[]string{"technology", "golang", "fiber", "programming"}},
	{"Beautiful sunset today at the beach. Nature never ceases to amaze me. Perfect way to end a productive day!",
		[]string{"nature", "photography", "sunset", "beach"}},
	{"Finished reading 'Clean Code' by Robert Martin. Essential read for any software developer. The principles are timeless!",
		[]string{"books", "programming", "learning", "development"}},
	{"Excited to announce that our team won the hackathon! Building innovative solutions with MongoDB was an incredible experience.",
		[]string{"hackathon", "technology", "innovation", "teamwork"}},
	{"Morning coffee and coding session. There's something magical about solving complex problems early in the day.",
		[]string{"lifestyle", "coding", "productivity", "coffee"}},
	{"Just deployed my first microservices architecture using Docker and Kubernetes. The learning curve was steep but worth it!",
		[]string{"devops", "docker", "kubernetes", "microservices"}},
	{"Travel tip: Always backup your code before leaving for a trip. Learned this the hard way!",
		[]string{"travel", "programming", "tips", "lifestyle"}},
	{"The AI revolution is here! Working on an exciting machine learning project. The possibilities are endless.",
		[]string{"ai", "machinelearning", "innovation", "research"}},
}

var sampleComments = []string{
	"Great post! Thanks for sharing.",
	"This is exactly what I was looking for!",
	"Interesting perspective. I agree with your points.",
	"Could you elaborate more on this topic?",
	"Amazing content! Keep it up!",
	"I had a similar experience. Very relatable.",
	"This helped me solve my problem. Thank you!",
	"Love the enthusiasm in this post!",
	"Bookmarking this for future reference.",
	"Excellent explanation! Very clear and concise.",
}
