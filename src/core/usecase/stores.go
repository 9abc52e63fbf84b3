package usecase

import (
	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

func StateAssociationStore(r ports.StateAssociationRepository) Store[domain.StateAssociation] {
	return Store[domain.StateAssociation]{
		Create: r.CreateStateAssociation,
		Get:    r.GetStateAssociation,
		List:   r.ListStateAssociations,
		Update: r.UpdateStateAssociation,
	}
}

func DisabilityCategoryStore(r ports.DisabilityCategoryRepository) Store[domain.DisabilityCategory] {
	return Store[domain.DisabilityCategory]{
		Create: r.CreateDisabilityCategory,
		Get:    r.GetDisabilityCategory,
		List:   r.ListDisabilityCategories,
		Update: r.UpdateDisabilityCategory,
	}
}

func VenueStore(r ports.VenueRepository) Store[domain.Venue] {
	return Store[domain.Venue]{
		Create: r.CreateVenue,
		Get:    r.GetVenue,
		List:   r.ListVenues,
		Update: r.UpdateVenue,
	}
}

func EventStore(r ports.EventRepository) Store[domain.Event] {
	return Store[domain.Event]{
		Create: r.CreateEvent,
		Get:    r.GetEvent,
		List:   r.ListEvents,
		Update: r.UpdateEvent,
	}
}

func NewsStore(r ports.NewsRepository) Store[domain.NewsArticle] {
	return Store[domain.NewsArticle]{
		Create: r.CreateNews,
		Get:    r.GetNews,
		List:   r.ListNews,
		Update: r.UpdateNews,
	}
}

func MediaStore(r ports.MediaRepository) Store[domain.MediaItem] {
	return Store[domain.MediaItem]{
		Create: r.CreateMedia,
		Get:    r.GetMedia,
		List:   r.ListMedia,
		Update: r.UpdateMedia,
	}
}

func ClassificationStore(r ports.ClassificationRepository) Store[domain.Classification] {
	return Store[domain.Classification]{
		Create: r.CreateClassification,
		Get:    r.GetClassification,
		List:   r.ListClassifications,
		Update: r.UpdateClassification,
	}
}
