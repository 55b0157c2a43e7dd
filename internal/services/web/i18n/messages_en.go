package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Shell
	message.SetString(lang, "app.name", "Disney Characters")
	message.SetString(lang, "title.page", "%s | Disney Characters")
	message.SetString(lang, "title.profile", "User Profile")
	message.SetString(lang, "title.edit_profile", "Edit Profile")
	message.SetString(lang, "header.home", "Home")
	message.SetString(lang, "header.search_label", "Search characters")
	message.SetString(lang, "header.search_placeholder", "Find a character...")
	message.SetString(lang, "header.profile", "User profile")
	message.SetString(lang, "footer.disclaimer", "For educational use only. All characters and content are the property of Disney. This test is for private use and development testing only and should not be distributed for public consumption.")
	message.SetString(lang, "common.loading", "Loading...")
	message.SetString(lang, "common.not_available", "Not Available")

	// Cards and grids
	message.SetString(lang, "card.view_profile", "VIEW PROFILE")
	message.SetString(lang, "card.image_alt", "Picture of %s")
	message.SetString(lang, "card.featured_films", "Featured Films")
	message.SetString(lang, "card.featured_tv_shows", "Featured TV Shows")
	message.SetString(lang, "card.featured_short_films", "Featured Short Films")
	message.SetString(lang, "card.featured_video_games", "Featured Video Games")
	message.SetString(lang, "card.featured_park_attractions", "Featured Park Attractions")
	message.SetString(lang, "grid.search_results", "Search Results - %s")
	message.SetString(lang, "grid.featured", "Featured Characters!")

	// Search placeholders
	message.SetString(lang, "search.no_results", "No Results Found For:")
	message.SetString(lang, "search.unavailable", "Service Unavailable")
	message.SetString(lang, "search.unavailable_detail", "The character catalog could not be reached. Please try again in a moment.")

	// Character detail
	message.SetString(lang, "detail.last_updated", "Last Updated:")
	message.SetString(lang, "detail.feature_films", "Feature Films")
	message.SetString(lang, "detail.short_films", "Short Films")
	message.SetString(lang, "detail.tv_shows", "TV Shows")
	message.SetString(lang, "detail.park_attractions", "Park Attractions")
	message.SetString(lang, "detail.video_games", "Video Games")
	message.SetString(lang, "detail.explore_more", "Explore More Character Details")

	// Profile
	message.SetString(lang, "profile.not_available", "Profile Not Available")
	message.SetString(lang, "profile.last_updated", "Last Updated:")
	message.SetString(lang, "profile.never", "Never")
	message.SetString(lang, "profile.age", "Age")
	message.SetString(lang, "profile.location", "Location")
	message.SetString(lang, "profile.favorite_character", "Favorite Disney Character")
	message.SetString(lang, "profile.favorite_movie", "Favorite Disney Movie")
	message.SetString(lang, "profile.favorite_disneyland", "Favorite Disneyland")
	message.SetString(lang, "profile.edit", "Edit Profile")
	message.SetString(lang, "profile.notice.saved", "Profile updated.")
	message.SetString(lang, "profile.form.first_name", "First Name")
	message.SetString(lang, "profile.form.last_name", "Last Name")
	message.SetString(lang, "profile.form.birth_date", "Birth Date")
	message.SetString(lang, "profile.form.city", "City")
	message.SetString(lang, "profile.form.state", "State")
	message.SetString(lang, "profile.form.select_state", "Select a state")
	message.SetString(lang, "profile.form.select_park", "Select a park")
	message.SetString(lang, "profile.form.update", "Update Profile")
	message.SetString(lang, "profile.form.cancel", "Cancel")
	message.SetString(lang, "profile.error.required_fields", "First name, last name, and birth date are required.")

	// Errors
	message.SetString(lang, "error.back_home", "Back to home")
	message.SetString(lang, "error.not_found.title", "Page not found")
	message.SetString(lang, "error.not_found.detail", "We could not find what you were looking for.")
	message.SetString(lang, "error.unavailable.title", "Service unavailable")
	message.SetString(lang, "error.unavailable.detail", "The character catalog could not be reached. Please try again in a moment.")
	message.SetString(lang, "error.invalid_input.title", "Invalid request")
	message.SetString(lang, "error.invalid_input.detail", "The request could not be processed.")
	message.SetString(lang, "error.unknown.title", "Something went wrong")
	message.SetString(lang, "error.unknown.detail", "An unexpected error occurred.")
}
